package pipeline

import (
	"fmt"

	"github.com/rshade/recordgrid/internal/records"
)

// Paginate returns page (1-based) of recs, pageSize records long, clipped to
// the bounds of recs. The last page may be short. Page numbers are not
// clamped: a page past the end or below 1 yields an empty slice. Derive
// valid pages from PageCount.
//
// The result shares memory with recs but is capped so appending to it cannot
// overwrite the input. Paginate panics if pageSize is not positive.
func Paginate(recs []records.Record, page, pageSize int) []records.Record {
	mustPositive(pageSize)

	start := clip((page-1)*pageSize, 0, len(recs))
	end := clip(page*pageSize, start, len(recs))
	return recs[start:end:end]
}

// PageCount is ceil(total/pageSize), and 0 when there are no records.
// It panics if pageSize is not positive.
func PageCount(total, pageSize int) int {
	mustPositive(pageSize)

	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func clip(v, lower, upper int) int {
	return max(lower, min(v, upper))
}

func mustPositive(pageSize int) {
	if pageSize <= 0 {
		panic(fmt.Sprintf("pipeline: page size must be positive, got %d", pageSize))
	}
}
