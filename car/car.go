package car

// Car represents one vehicle listing row in the cars table.
type Car struct {
	ID      int    `json:"id" db:"id"`
	Brand   string `json:"brand" db:"brand"`
	Model   string `json:"model" db:"model"`
	Year    int    `json:"year" db:"year"`
	Color   string `json:"color" db:"color"`
	Mileage int    `json:"mileage" db:"mileage"`
	Price   int    `json:"price" db:"price"`
	CarType string `json:"car_type" db:"car_type"`
}

// ToMap projects the listing into a plain field-keyed mapping for
// serialization at the tool boundary.
func (c Car) ToMap() map[string]any {
	return map[string]any{
		"id":       c.ID,
		"brand":    c.Brand,
		"model":    c.Model,
		"year":     c.Year,
		"color":    c.Color,
		"mileage":  c.Mileage,
		"price":    c.Price,
		"car_type": c.CarType,
	}
}
