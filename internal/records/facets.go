package records

import (
	"slices"

	"github.com/samber/lo"
)

// Facets returns the distinct values of field across recs, sorted.
func Facets(recs []Record, field Field) []string {
	values := lo.Uniq(lo.Map(recs, func(r Record, _ int) string {
		return field.Value(r)
	}))
	slices.Sort(values)
	return values
}
