package pipeline

import (
	"github.com/samber/lo"

	"github.com/rshade/recordgrid/internal/records"
)

// Criteria holds the accepted values for each filterable field.
// An empty list places no restriction on its field.
type Criteria struct {
	Categories []string `json:"categories" yaml:"categories"`
	Statuses   []string `json:"statuses"   yaml:"statuses"`
}

// IsZero reports whether the criteria restrict nothing.
func (c Criteria) IsZero() bool {
	return len(c.Categories) == 0 && len(c.Statuses) == 0
}

// Filter keeps the records accepted by every non-empty field criterion.
// Within a field any listed value matches. Relative order is preserved.
func Filter(recs []records.Record, c Criteria) []records.Record {
	if c.IsZero() {
		return recs
	}
	out := recs
	out = filterField(out, records.FieldCategory, c.Categories)
	out = filterField(out, records.FieldStatus, c.Statuses)
	return out
}

func filterField(recs []records.Record, field records.Field, accepted []string) []records.Record {
	if len(accepted) == 0 {
		return recs
	}
	return lo.Filter(recs, func(r records.Record, _ int) bool {
		return lo.Contains(accepted, field.Value(r))
	})
}
