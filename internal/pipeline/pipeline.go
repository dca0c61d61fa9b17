package pipeline

import (
	"github.com/rshade/recordgrid/internal/records"
)

// Query is everything that decides which records are visible and in what
// order: the search term, the filter selections and the sort directive.
type Query struct {
	Term    string         `json:"term"    yaml:"term"`
	Filters Criteria       `json:"filters" yaml:"filters"`
	Sort    *SortDirective `json:"sort"    yaml:"sort"`
}

// Process applies search, filter and sort, in that order.
func Process(recs []records.Record, q Query) []records.Record {
	out := Search(recs, q.Term)
	out = Filter(out, q.Filters)
	out = Sort(out, q.Sort)
	return out
}
