package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const helpText = "[/] Search  [c] Category  [t] Status  [x] Clear filters  [1-5] Sort  " +
	"[←/→] Page  [Enter] Details  [q] Quit"

// View renders the current view (Bubble Tea interface).
func (m *DataTableModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateDetail:
		return renderDetail(m.selected, m.width)
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderListView renders the controls, the table or empty state, and the footer.
func (m *DataTableModel) renderListView() string {
	title := TitleStyle.Render("Records") + "  " + SubtleStyle.Render(TotalRecordsLine(m.view.DatasetSize))
	if m.notice != "" {
		title += "  " + LabelStyle.Render(m.notice)
	}

	sections := []string{title, m.renderControls()}

	if m.view.Empty {
		sections = append(sections, renderEmptyState(m.width))
	} else {
		sections = append(sections, m.table.View(), renderFooter(m.view, true))
	}

	sections = append(sections, SubtleStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderControls lays out the search box and both filter dropdowns.
func (m *DataTableModel) renderControls() string {
	searchLabel := LabelStyle.Render("Search: ")
	if m.focus == focusSearch {
		searchLabel = ActiveStyle.Render("Search: ")
	}

	gap := "   "
	return lipgloss.JoinHorizontal(lipgloss.Top,
		searchLabel+m.search.View(),
		gap,
		m.categories.View(m.view.Query.Filters.Categories, m.focus == focusCategory),
		gap,
		m.statuses.View(m.view.Query.Filters.Statuses, m.focus == focusStatus),
	)
}
