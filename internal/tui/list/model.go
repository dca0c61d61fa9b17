package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders one item. selected is true for the item under the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a scrolling list with a single cursor.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	cursor int

	// visibleFrom and visibleTo bound the rendered window [from, to).
	visibleFrom int
	visibleTo   int

	height int
}

// New creates a list showing at most height rows.
func New[T any](items []T, height int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on navigation keys.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		m.handleKeyMsg(keyMsg)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetCursor(m.cursor - 1)
	case tea.KeyDown:
		m.SetCursor(m.cursor + 1)
	case tea.KeyPgUp:
		m.SetCursor(m.cursor - m.height)
	case tea.KeyPgDown:
		m.SetCursor(m.cursor + m.height)
	case tea.KeyHome:
		m.SetCursor(0)
	case tea.KeyEnd:
		m.SetCursor(len(m.items) - 1)
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "j":
			m.SetCursor(m.cursor + 1)
		case "k":
			m.SetCursor(m.cursor - 1)
		}
	default:
	}
}

// SetItems replaces the items, keeping the cursor in range.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.SetCursor(m.cursor)
}

// SetHeight changes the viewport height.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 1)
	m.updateVisibleRange()
}

// SetCursor moves the cursor to index, capped to valid bounds.
func (m *Model[T]) SetCursor(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.cursor = 0
	case index >= len(m.items):
		m.cursor = len(m.items) - 1
	default:
		m.cursor = index
	}
	m.updateVisibleRange()
}

// updateVisibleRange centers the cursor in the viewport where possible.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	from := m.cursor - m.height/halfViewportDivisor
	from = min(from, len(m.items)-m.height)
	from = max(from, 0)

	m.visibleFrom = from
	m.visibleTo = min(from+m.height, len(m.items))
}

// View renders the visible rows.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	lines := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		lines = append(lines, m.renderFunc(m.items[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// Len returns the number of items.
func (m *Model[T]) Len() int { return len(m.items) }

// Cursor returns the index under the cursor.
func (m *Model[T]) Cursor() int { return m.cursor }

// VisibleFrom returns the first rendered index (inclusive).
func (m *Model[T]) VisibleFrom() int { return m.visibleFrom }

// VisibleTo returns the last rendered index (exclusive).
func (m *Model[T]) VisibleTo() int { return m.visibleTo }

// Current returns the item under the cursor, or false when the list is empty.
func (m *Model[T]) Current() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.cursor], true
}
