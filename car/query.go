package car

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cardb/mcp-server/db"
)

// carColumns fixes the column order every scan relies on.
const carColumns = "id, brand, model, year, color, mileage, price, car_type"

// NotFoundError is returned by SelectByID when no listing has the
// requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no car found with id %d", e.ID)
}

// SearchCriteria holds the optional filters for Search. Zero values mean
// the filter is absent and contributes no clause.
type SearchCriteria struct {
	MinYear    int
	MaxYear    int
	Color      string
	MaxMileage int
	MinPrice   int
	MaxPrice   int
	CarType    string
	Brand      string
}

// condition is one (column, operator, bound value) triple of a WHERE clause.
type condition struct {
	column string
	op     string
	value  any
}

// whereBuilder accumulates conditions and renders them into parameterized
// SQL plus the ordered argument list.
type whereBuilder struct {
	conds []condition
}

func (b *whereBuilder) add(column, op string, value any) {
	b.conds = append(b.conds, condition{column: column, op: op, value: value})
}

func (b *whereBuilder) build() (string, []any) {
	clause := "WHERE 1=1"
	args := make([]any, 0, len(b.conds))
	for _, c := range b.conds {
		clause += fmt.Sprintf(" AND %s %s ?", c.column, c.op)
		args = append(args, c.value)
	}
	return clause, args
}

// where renders the criteria in fixed clause order: min_year, max_year,
// color, max_mileage, min_price, max_price, car_type, brand.
func (q SearchCriteria) where() (string, []any) {
	var b whereBuilder
	if q.MinYear != 0 {
		b.add("year", ">=", q.MinYear)
	}
	if q.MaxYear != 0 {
		b.add("year", "<=", q.MaxYear)
	}
	if q.Color != "" {
		b.add("color", "=", q.Color)
	}
	if q.MaxMileage != 0 {
		b.add("mileage", "<=", q.MaxMileage)
	}
	if q.MinPrice != 0 {
		b.add("price", ">=", q.MinPrice)
	}
	if q.MaxPrice != 0 {
		b.add("price", "<=", q.MaxPrice)
	}
	if q.CarType != "" {
		b.add("car_type", "=", q.CarType)
	}
	if q.Brand != "" {
		b.add("brand", "=", q.Brand)
	}
	return b.build()
}

// Search returns every listing matching the criteria. Row order is whatever
// the database returns; there is no ORDER BY.
func Search(criteria SearchCriteria) ([]Car, error) {
	conn, err := db.Connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	where, args := criteria.where()
	rows, err := conn.Query("SELECT "+carColumns+" FROM cars "+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := []Car{}
	for rows.Next() {
		var c Car
		if err := rows.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Color, &c.Mileage, &c.Price, &c.CarType); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

// Selection is the result of picking one listing by id.
type Selection struct {
	Message string `json:"message"`
	Car     Car    `json:"car"`
}

// SelectByID looks up a single listing. A missing id is a *NotFoundError,
// never an empty success.
func SelectByID(id int) (*Selection, error) {
	conn, err := db.Connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var c Car
	err = conn.QueryRow("SELECT "+carColumns+" FROM cars WHERE id = ?", id).
		Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Color, &c.Mileage, &c.Price, &c.CarType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}

	return &Selection{
		Message: fmt.Sprintf("You selected the %s %s. Great choice!", c.Brand, c.Model),
		Car:     c,
	}, nil
}

// Range is a min/max summary over one numeric column.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Parameters summarizes the values available for search filters.
type Parameters struct {
	Brands       []string `json:"brands"`
	Colors       []string `json:"colors"`
	CarTypes     []string `json:"car_types"`
	YearRange    Range    `json:"year_range"`
	PriceRange   Range    `json:"price_range"`
	MileageRange Range    `json:"mileage_range"`
}

// AvailableParameters collects the distinct brands, colors and car types
// plus the year, price and mileage ranges present in the catalog.
func AvailableParameters() (*Parameters, error) {
	conn, err := db.Connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	params := &Parameters{}
	if params.Brands, err = distinctValues(conn, "brand"); err != nil {
		return nil, err
	}
	if params.Colors, err = distinctValues(conn, "color"); err != nil {
		return nil, err
	}
	if params.CarTypes, err = distinctValues(conn, "car_type"); err != nil {
		return nil, err
	}
	if params.YearRange, err = columnRange(conn, "year"); err != nil {
		return nil, err
	}
	if params.PriceRange, err = columnRange(conn, "price"); err != nil {
		return nil, err
	}
	if params.MileageRange, err = columnRange(conn, "mileage"); err != nil {
		return nil, err
	}
	return params, nil
}

func distinctValues(conn *sql.DB, column string) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM cars ORDER BY %s", column, column)
	rows, err := conn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func columnRange(conn *sql.DB, column string) (Range, error) {
	query := fmt.Sprintf("SELECT MIN(%s), MAX(%s) FROM cars", column, column)
	// NullInt64 so an empty table yields a zero range instead of a scan error.
	var min, max sql.NullInt64
	if err := conn.QueryRow(query).Scan(&min, &max); err != nil {
		return Range{}, err
	}
	return Range{Min: int(min.Int64), Max: int(max.Int64)}, nil
}

// ModelsByBrand returns the distinct model names for a brand in ascending
// order. An unknown brand yields an empty slice, not an error.
func ModelsByBrand(brand string) ([]string, error) {
	conn, err := db.Connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query("SELECT DISTINCT model FROM cars WHERE brand = ? ORDER BY model", brand)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := []string{}
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}
