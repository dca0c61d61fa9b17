package pagination

import (
	"errors"
	"fmt"
)

// Paging defaults and validation limits.
const (
	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 1000
)

// Validation errors.
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("page-size must be between 1 and 1000")
)

// Params holds the requested page and page size.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of records per page.
	PageSize int
}

// Validate checks the bounds of both fields.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w, got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w, got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// Clamp returns p with Page moved into [1, totalPages]. With no pages at all
// the result is page 1.
func (p Params) Clamp(totalPages int) Params {
	upper := max(totalPages, MinPage)
	p.Page = max(MinPage, min(p.Page, upper))
	return p
}
