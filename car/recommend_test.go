package car

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name       string
		preference string
		expected   map[string]any
	}{
		{
			name:       "economical",
			preference: "economical",
			expected: map[string]any{
				"max_price": 3000000,
				"min_year":  2018,
				"car_type":  "compact",
			},
		},
		{
			name:       "premium",
			preference: "premium",
			expected: map[string]any{
				"min_price": 5000000,
				"brands":    []string{"BMW", "Mercedes", "Audi"},
				"min_year":  2020,
			},
		},
		{
			name:       "practical",
			preference: "practical",
			expected: map[string]any{
				"car_type":    "small",
				"max_mileage": 50000,
				"min_year":    2019,
			},
		},
		{
			name:       "sporty",
			preference: "sporty",
			expected: map[string]any{
				"car_type": "sports-car",
				"colors":   []string{"red", "black"},
			},
		},
		{
			name:       "matching is case-insensitive",
			preference: "PREMIUM",
			expected: map[string]any{
				"min_price": 5000000,
				"brands":    []string{"BMW", "Mercedes", "Audi"},
				"min_year":  2020,
			},
		},
		{
			name:       "unrecognized keyword falls back to default",
			preference: "unknown-xyz",
			expected: map[string]any{
				"min_year":    2020,
				"max_mileage": 70000,
			},
		},
		{
			name:       "empty string falls back to default",
			preference: "",
			expected: map[string]any{
				"min_year":    2020,
				"max_mileage": 70000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Recommend(tt.preference))
		})
	}
}
