package tui

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/recordgrid/internal/grid"
	"github.com/rshade/recordgrid/internal/pagination"
	"github.com/rshade/recordgrid/internal/pipeline"
	"github.com/rshade/recordgrid/internal/records"
)

// printer formats counts with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Sort indicators shown next to column titles.
const (
	sortIndicatorNone = "↕"
	sortIndicatorAsc  = "↑"
	sortIndicatorDesc = "↓"
)

// FormatCount formats n with thousand separators, e.g. 1234 → "1,234".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// SortIndicator returns the arrow for field under directive d.
func SortIndicator(field records.Field, d *pipeline.SortDirective) string {
	if d == nil || d.Field != field {
		return sortIndicatorNone
	}
	if d.Direction == pipeline.Descending {
		return sortIndicatorDesc
	}
	return sortIndicatorAsc
}

// ColumnTitle is the header text for field, with its sort indicator.
func ColumnTitle(field records.Field, d *pipeline.SortDirective) string {
	return field.Title() + " " + SortIndicator(field, d)
}

// SerialNumber is the 1-based position of row index i on page within the
// whole processed set.
func SerialNumber(page, pageSize, i int) int {
	return (page-1)*pageSize + i + 1
}

// TotalRecordsLine is the header summary, e.g. "Total Records: 1,234".
func TotalRecordsLine(n int) string {
	return "Total Records: " + FormatCount(n)
}

// ShowingLine is the footer summary, e.g. "Showing 21 to 40 of 1,234 results".
func ShowingLine(meta pagination.Meta) string {
	return fmt.Sprintf("Showing %s to %s of %s results",
		FormatCount(meta.From), FormatCount(meta.To), FormatCount(meta.TotalItems))
}

// FilterLabel is a dropdown's label, e.g. "Category (2)" with two selections.
func FilterLabel(label string, selected int) string {
	if selected == 0 {
		return label
	}
	return fmt.Sprintf("%s (%d)", label, selected)
}

// rowCells renders the cells of the view's rows, starting with the serial
// number column.
func rowCells(v grid.View) [][]string {
	out := make([][]string, 0, len(v.Rows))
	for i, r := range v.Rows {
		out = append(out, []string{
			FormatCount(SerialNumber(v.Page, v.PageSize, i)),
			r.ID,
			r.Name,
			r.Category,
			r.Status,
			r.CreatedAt,
		})
	}
	return out
}

// columnTitles returns "#" followed by each field's title.
func columnTitles(d *pipeline.SortDirective, withIndicator bool) []string {
	titles := []string{"#"}
	for _, f := range records.Fields() {
		if withIndicator {
			titles = append(titles, ColumnTitle(f, d))
			continue
		}
		titles = append(titles, f.Title())
	}
	return titles
}
