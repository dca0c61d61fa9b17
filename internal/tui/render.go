package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/recordgrid/internal/grid"
	"github.com/rshade/recordgrid/internal/pagination"
	"github.com/rshade/recordgrid/internal/records"
)

// Empty-state text.
const (
	EmptyTitle = "No results found"
	EmptyHint  = "Try adjusting your search or filters"
)

// tabwriterPadding is the minimum padding between plain-text columns.
const tabwriterPadding = 2

// statusColumn is the index of the Status cell in a rendered row.
const statusColumn = 4

// RenderPlain writes the page as tab-aligned text followed by the
// "Showing" line. An empty view prints the empty state instead.
func RenderPlain(w io.Writer, v grid.View) error {
	if _, err := fmt.Fprintln(w, TotalRecordsLine(v.DatasetSize)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if v.Empty {
		_, err := fmt.Fprintf(w, "%s\n%s\n", EmptyTitle, EmptyHint)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	titles := columnTitles(v.Query.Sort, false)
	if _, err := fmt.Fprintln(tw, strings.ToUpper(strings.Join(titles, "\t"))); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, cells := range rowCells(v) {
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(w, "%s  (page %d of %d)\n", ShowingLine(v.Meta), v.Page, v.PageCount)
	return err
}

// RenderStyled returns the page as a bordered lipgloss table with colored
// status cells, the "Showing" line and the page window.
func RenderStyled(v grid.View, width int) string {
	sections := []string{TitleStyle.Render(TotalRecordsLine(v.DatasetSize))}

	if v.Empty {
		sections = append(sections, renderEmptyState(width))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	rows := rowCells(v)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(columnTitles(v.Query.Sort, true)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Bold(true).Foreground(ColorHeader)
			case col == statusColumn && row >= 0 && row < len(rows):
				return base.Inherit(StatusStyle(rows[row][statusColumn]))
			default:
				return base
			}
		})

	sections = append(sections,
		t.String(),
		renderFooter(v, true),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderEmptyState is the "no results" block.
func renderEmptyState(width int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		EmptyStyle.Render(EmptyTitle),
		SubtleStyle.Render(EmptyHint),
	)
	return lipgloss.NewStyle().
		Width(max(width-borderPadding, lipgloss.Width(EmptyHint))).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(body)
}

// renderFooter is the "Showing" line and the page window. It is empty when
// there are no results.
func renderFooter(v grid.View, styled bool) string {
	if v.Empty {
		return ""
	}
	return ShowingLine(v.Meta) + "   " + renderWindow(v.Window, v.Page, v.Meta, styled)
}

// renderWindow draws the page buttons, e.g. "‹ 1 … 4 [5] 6 … 20 ›".
func renderWindow(items []pagination.Item, current int, meta pagination.Meta, styled bool) string {
	parts := make([]string, 0, len(items)+2) //nolint:mnd // Previous and next arrows.

	prev := "‹"
	if styled && !meta.HasPrevious {
		prev = SubtleStyle.Render(prev)
	}
	parts = append(parts, prev)

	for _, item := range items {
		switch {
		case item.Ellipsis:
			parts = append(parts, "…")
		case item.Page == current && styled:
			parts = append(parts, CurrentPageStyle.Render(" "+item.String()+" "))
		case item.Page == current:
			parts = append(parts, "["+item.String()+"]")
		default:
			parts = append(parts, item.String())
		}
	}

	next := "›"
	if styled && !meta.HasNext {
		next = SubtleStyle.Render(next)
	}
	parts = append(parts, next)

	return strings.Join(parts, " ")
}

// renderDetail is the full record view.
func renderDetail(r records.Record, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("RECORD DETAIL"))
	content.WriteString("\n\n")
	for _, f := range records.Fields() {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-12s", f.Title()+":")))
		value := ValueStyle.Render(f.Value(r))
		if f == records.FieldStatus {
			value = StatusStyle(r.Status).Render(r.Status)
		}
		content.WriteString(value)
		content.WriteString("\n")
	}
	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))

	return BoxStyle.Width(max(width-borderPadding, 0)).Render(content.String())
}
