package car

import "strings"

// Recommend maps a preference keyword to suggested search filters. Matching
// is case-insensitive and exact; any unrecognized input falls back to the
// default recommendation. No database access happens here.
func Recommend(preference string) map[string]any {
	switch strings.ToLower(preference) {
	case "economical":
		return map[string]any{
			"max_price": 3000000,
			"min_year":  2018,
			"car_type":  "compact",
		}
	case "premium":
		return map[string]any{
			"min_price": 5000000,
			"brands":    []string{"BMW", "Mercedes", "Audi"},
			"min_year":  2020,
		}
	case "practical":
		return map[string]any{
			"car_type":    "small",
			"max_mileage": 50000,
			"min_year":    2019,
		}
	case "sporty":
		return map[string]any{
			"car_type": "sports-car",
			"colors":   []string{"red", "black"},
		}
	default:
		return map[string]any{
			"min_year":    2020,
			"max_mileage": 70000,
		}
	}
}
