package car

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCar_ToMap(t *testing.T) {
	c := Car{
		ID:      7,
		Brand:   "Toyota",
		Model:   "GR86",
		Year:    2023,
		Color:   "red",
		Mileage: 4000,
		Price:   4500000,
		CarType: "sports-car",
	}

	m := c.ToMap()

	assert.Equal(t, map[string]any{
		"id":       7,
		"brand":    "Toyota",
		"model":    "GR86",
		"year":     2023,
		"color":    "red",
		"mileage":  4000,
		"price":    4500000,
		"car_type": "sports-car",
	}, m)
}
