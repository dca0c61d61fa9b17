package pipeline

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rshade/recordgrid/internal/records"
)

// Search keeps the records where any field contains term, ignoring case.
// A blank term returns recs unchanged.
func Search(recs []records.Record, term string) []records.Record {
	if strings.TrimSpace(term) == "" {
		return recs
	}

	needle := strings.ToLower(term)
	return lo.Filter(recs, func(r records.Record, _ int) bool {
		return Matches(r, needle)
	})
}

// Matches reports whether any field of r contains needle. needle must
// already be lower case.
func Matches(r records.Record, needle string) bool {
	for _, f := range records.Fields() {
		if strings.Contains(strings.ToLower(f.Value(r)), needle) {
			return true
		}
	}
	return false
}
