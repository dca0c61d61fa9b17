package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/recordgrid/internal/records"
)

// Direction is the sort order of a directive.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// SortDirective orders records by one field. A nil *SortDirective means no sort.
type SortDirective struct {
	Field     records.Field `json:"field"     yaml:"field"`
	Direction Direction     `json:"direction" yaml:"direction"`
}

func (d *SortDirective) String() string {
	if d == nil {
		return "none"
	}
	return string(d.Field) + ":" + string(d.Direction)
}

// compare orders a and b by the directive. Descending negates the comparison
// so equal keys keep their input order in both directions.
func (d *SortDirective) compare(a, b records.Record) int {
	c := strings.Compare(d.Field.Value(a), d.Field.Value(b))
	if d.Direction == Descending {
		return -c
	}
	return c
}

// Sort returns a stably sorted copy of recs. A nil directive returns recs unchanged.
func Sort(recs []records.Record, d *SortDirective) []records.Record {
	if d == nil {
		return recs
	}

	sorted := make([]records.Record, len(recs))
	copy(sorted, recs)
	slices.SortStableFunc(sorted, d.compare)
	return sorted
}

// NextSort is the column-header click cycle for field:
// unsorted → ascending → descending → unsorted. Clicking a different field
// than the active one starts over at ascending.
func NextSort(current *SortDirective, field records.Field) *SortDirective {
	if current == nil || current.Field != field {
		return &SortDirective{Field: field, Direction: Ascending}
	}
	if current.Direction == Ascending {
		return &SortDirective{Field: field, Direction: Descending}
	}
	return nil
}

// Sort expression errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'createdAt:desc')")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses "field" or "field:order". The order defaults to asc.
// An empty expression means no sort and yields nil.
func ParseSort(expr string) (*SortDirective, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil //nolint:nilnil // No directive is a valid result.
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field, err := records.ParseField(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q (valid: id, name, category, status, createdAt)", ErrInvalidSortField, parts[0])
	}

	dir := Ascending
	if len(parts) == sortPartsMax {
		dir = Direction(strings.ToLower(strings.TrimSpace(parts[1])))
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, dir)
	}

	return &SortDirective{Field: field, Direction: dir}, nil
}
