// Package grid is the single control point behind the data table. A
// Controller owns the search term, filter selections, sort directive and
// current page, applies user events to them, and hands out snapshots of the
// visible page.
//
// A Controller has exactly one writer (the UI event loop) and is not safe
// for concurrent use.
package grid

import (
	"context"
	"slices"
	"time"

	"github.com/rshade/recordgrid/internal/logging"
	"github.com/rshade/recordgrid/internal/pagination"
	"github.com/rshade/recordgrid/internal/pipeline"
	"github.com/rshade/recordgrid/internal/records"
)

// Options configures a Controller.
type Options struct {
	// PageSize is the number of rows per page. Defaults to pagination.DefaultPageSize.
	PageSize int
}

// View is an immutable snapshot of what the table should display.
type View struct {
	Rows        []records.Record
	Page        int
	PageSize    int
	PageCount   int
	Total       int // records after search and filter
	DatasetSize int // records before search and filter
	Meta        pagination.Meta
	Window      []pagination.Item
	Query       pipeline.Query

	// Empty is true when the criteria exclude every record.
	Empty bool
}

// Controller holds table state and the memoized processed record set.
type Controller struct {
	ctx context.Context

	recs     []records.Record
	query    pipeline.Query
	page     int
	pageSize int

	processed []records.Record
	stale     bool

	categories []string
	statuses   []string
}

// New creates a Controller over recs showing the first page.
func New(ctx context.Context, recs []records.Record, opts Options) *Controller {
	size := opts.PageSize
	if size <= 0 {
		size = pagination.DefaultPageSize
	}

	c := &Controller{
		ctx:      ctx,
		page:     1,
		pageSize: size,
	}
	c.setRecords(recs)
	return c
}

func (c *Controller) setRecords(recs []records.Record) {
	if recs == nil {
		recs = []records.Record{}
	}
	c.recs = recs
	c.categories = records.Facets(recs, records.FieldCategory)
	c.statuses = records.Facets(recs, records.FieldStatus)
	c.stale = true
}

// ReplaceRecords swaps in a new dataset, keeping the criteria. The current
// page is kept when it still exists.
func (c *Controller) ReplaceRecords(recs []records.Record) {
	c.setRecords(recs)
	c.page = c.clampPage(c.page)
}

// SetSearch applies a (debounced) search term and returns to page 1.
func (c *Controller) SetSearch(term string) {
	if term != c.query.Term {
		c.query.Term = term
		c.stale = true
	}
	c.page = 1
}

// SetCategories replaces the accepted categories and returns to page 1.
func (c *Controller) SetCategories(values []string) {
	c.query.Filters.Categories = slices.Clone(values)
	c.criteriaChanged()
}

// SetStatuses replaces the accepted statuses and returns to page 1.
func (c *Controller) SetStatuses(values []string) {
	c.query.Filters.Statuses = slices.Clone(values)
	c.criteriaChanged()
}

// ToggleCategory adds or removes one accepted category.
func (c *Controller) ToggleCategory(value string) {
	c.SetCategories(toggle(c.query.Filters.Categories, value))
}

// ToggleStatus adds or removes one accepted status.
func (c *Controller) ToggleStatus(value string) {
	c.SetStatuses(toggle(c.query.Filters.Statuses, value))
}

// ClearFilters removes every filter selection.
func (c *Controller) ClearFilters() {
	c.query.Filters = pipeline.Criteria{}
	c.criteriaChanged()
}

// ToggleSort advances field through unsorted → ascending → descending.
func (c *Controller) ToggleSort(field records.Field) {
	c.query.Sort = pipeline.NextSort(c.query.Sort, field)
	c.criteriaChanged()
}

// SetSort installs d directly (nil clears sorting).
func (c *Controller) SetSort(d *pipeline.SortDirective) {
	c.query.Sort = d
	c.criteriaChanged()
}

// SetPage moves to page n, clamped to the available pages.
func (c *Controller) SetPage(n int) {
	c.page = c.clampPage(n)
}

// NextPage moves forward one page if there is one.
func (c *Controller) NextPage() { c.SetPage(c.page + 1) }

// PrevPage moves back one page if there is one.
func (c *Controller) PrevPage() { c.SetPage(c.page - 1) }

// FirstPage moves to page 1.
func (c *Controller) FirstPage() { c.SetPage(1) }

// LastPage moves to the last page.
func (c *Controller) LastPage() { c.SetPage(c.PageCount()) }

func (c *Controller) criteriaChanged() {
	c.stale = true
	c.page = 1
}

func (c *Controller) clampPage(n int) int {
	return pagination.Params{Page: n, PageSize: c.pageSize}.Clamp(c.PageCount()).Page
}

// Processed returns the searched, filtered and sorted records.
// The result is cached until the criteria or the dataset change.
func (c *Controller) Processed() []records.Record {
	if c.stale {
		c.recompute()
	}
	return c.processed
}

func (c *Controller) recompute() {
	start := time.Now()
	c.processed = pipeline.Process(c.recs, c.query)
	c.stale = false

	logging.FromContext(c.ctx).Debug().Ctx(c.ctx).
		Str("component", "grid").
		Str("term", c.query.Term).
		Strs("categories", c.query.Filters.Categories).
		Strs("statuses", c.query.Filters.Statuses).
		Stringer("sort", c.query.Sort).
		Int("dataset", len(c.recs)).
		Int("matched", len(c.processed)).
		Dur("elapsed", time.Since(start)).
		Msg("recomputed visible records")
}

// PageCount is the number of pages in the processed set.
func (c *Controller) PageCount() int {
	return pipeline.PageCount(len(c.Processed()), c.pageSize)
}

// Snapshot describes the current page.
func (c *Controller) Snapshot() View {
	processed := c.Processed()
	pageCount := pipeline.PageCount(len(processed), c.pageSize)

	return View{
		Rows:        pipeline.Paginate(processed, c.page, c.pageSize),
		Page:        c.page,
		PageSize:    c.pageSize,
		PageCount:   pageCount,
		Total:       len(processed),
		DatasetSize: len(c.recs),
		Meta:        pagination.NewMeta(c.page, c.pageSize, len(processed)),
		Window:      pagination.Window(c.page, pageCount),
		Query:       c.Query(),
		Empty:       len(processed) == 0,
	}
}

// Query returns a copy of the current criteria.
func (c *Controller) Query() pipeline.Query {
	q := c.query
	q.Filters.Categories = slices.Clone(q.Filters.Categories)
	q.Filters.Statuses = slices.Clone(q.Filters.Statuses)
	if q.Sort != nil {
		d := *q.Sort
		q.Sort = &d
	}
	return q
}

// Page is the current 1-based page.
func (c *Controller) Page() int { return c.page }

// PageSize is the number of rows per page.
func (c *Controller) PageSize() int { return c.pageSize }

// Categories lists the distinct categories in the dataset.
func (c *Controller) Categories() []string { return c.categories }

// Statuses lists the distinct statuses in the dataset.
func (c *Controller) Statuses() []string { return c.statuses }

// DatasetSize is the number of records before search and filter.
func (c *Controller) DatasetSize() int { return len(c.recs) }

// toggle returns values with v removed if present, else appended.
func toggle(values []string, v string) []string {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}
	return append(slices.Clone(values), v)
}
