// Command seed creates the cars table if it does not exist and fills it
// with sample listings for local development.
package main

import (
	"log"

	"github.com/cardb/mcp-server/car"
	"github.com/cardb/mcp-server/db"
)

const schema = `CREATE TABLE IF NOT EXISTS cars (
	id INT AUTO_INCREMENT PRIMARY KEY,
	brand VARCHAR(64) NOT NULL,
	model VARCHAR(64) NOT NULL,
	year INT NOT NULL,
	color VARCHAR(32) NOT NULL,
	mileage INT NOT NULL,
	price INT NOT NULL,
	car_type VARCHAR(32) NOT NULL
)`

var listings = []car.Car{
	{Brand: "Hyundai", Model: "Avante", Year: 2021, Color: "white", Mileage: 21000, Price: 2100000, CarType: "compact"},
	{Brand: "Hyundai", Model: "Sonata", Year: 2020, Color: "black", Mileage: 43000, Price: 2800000, CarType: "mid-size"},
	{Brand: "Kia", Model: "Morning", Year: 2019, Color: "red", Mileage: 38000, Price: 1500000, CarType: "compact"},
	{Brand: "Kia", Model: "K5", Year: 2022, Color: "white", Mileage: 12000, Price: 3200000, CarType: "mid-size"},
	{Brand: "BMW", Model: "320i", Year: 2021, Color: "black", Mileage: 18000, Price: 5600000, CarType: "mid-size"},
	{Brand: "BMW", Model: "Z4", Year: 2020, Color: "red", Mileage: 25000, Price: 7200000, CarType: "sports-car"},
	{Brand: "Mercedes", Model: "C200", Year: 2022, Color: "silver", Mileage: 9000, Price: 6800000, CarType: "mid-size"},
	{Brand: "Audi", Model: "A4", Year: 2020, Color: "blue", Mileage: 31000, Price: 5200000, CarType: "mid-size"},
	{Brand: "Toyota", Model: "Corolla", Year: 2019, Color: "white", Mileage: 46000, Price: 2300000, CarType: "small"},
	{Brand: "Toyota", Model: "GR86", Year: 2023, Color: "red", Mileage: 4000, Price: 4500000, CarType: "sports-car"},
}

func main() {
	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(schema); err != nil {
		log.Fatalf("error creating cars table: %v", err)
	}

	for _, c := range listings {
		_, err := conn.Exec(
			"INSERT INTO cars (brand, model, year, color, mileage, price, car_type) VALUES (?, ?, ?, ?, ?, ?, ?)",
			c.Brand, c.Model, c.Year, c.Color, c.Mileage, c.Price, c.CarType,
		)
		if err != nil {
			log.Fatalf("error inserting %s %s: %v", c.Brand, c.Model, err)
		}
	}
	log.Printf("[seed] inserted %d listings", len(listings))
}
