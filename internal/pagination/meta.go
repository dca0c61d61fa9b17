package pagination

import (
	"github.com/rshade/recordgrid/internal/pipeline"
)

// Meta describes one page of a result set.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	From        int  `json:"from"         yaml:"from"`
	To          int  `json:"to"           yaml:"to"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds metadata for page of a result with totalCount items.
// From and To are the 1-based positions of the first and last record on the
// page, both 0 when the page is empty.
func NewMeta(page, pageSize, totalCount int) Meta {
	totalPages := pipeline.PageCount(totalCount, pageSize)

	from := (page-1)*pageSize + 1
	to := min(page*pageSize, totalCount)
	if totalCount == 0 || from > to {
		from, to = 0, 0
	}

	return Meta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		From:        from,
		To:          to,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
