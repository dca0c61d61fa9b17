package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderInt(item int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", item)
	}
	return fmt.Sprintf("  %d", item)
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNew_EmptyList(t *testing.T) {
	m := New([]int{}, 5, renderInt)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.View())

	_, ok := m.Current()
	assert.False(t, ok)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Cursor())
}

func TestNavigationKeys(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   tea.KeyMsg
		want  int
	}{
		{"down", 0, tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"up at top", 0, tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"j", 3, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, 4},
		{"k", 3, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, 2},
		{"page down", 2, tea.KeyMsg{Type: tea.KeyPgDown}, 7},
		{"page up clamps", 2, tea.KeyMsg{Type: tea.KeyPgUp}, 0},
		{"end", 0, tea.KeyMsg{Type: tea.KeyEnd}, 19},
		{"home", 12, tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"down at bottom", 19, tea.KeyMsg{Type: tea.KeyDown}, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(seq(20), 5, renderInt)
			m.SetCursor(tt.start)
			m.Update(tt.key)
			assert.Equal(t, tt.want, m.Cursor())
		})
	}
}

func TestVisibleRangeFollowsCursor(t *testing.T) {
	m := New(seq(20), 5, renderInt)
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 5, m.VisibleTo())

	m.SetCursor(10)
	assert.Equal(t, 8, m.VisibleFrom())
	assert.Equal(t, 13, m.VisibleTo())

	m.SetCursor(19)
	assert.Equal(t, 15, m.VisibleFrom())
	assert.Equal(t, 20, m.VisibleTo())

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "> 19", lines[4])
}

func TestShortListFitsViewport(t *testing.T) {
	m := New(seq(3), 8, renderInt)
	m.SetCursor(2)
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 3, m.VisibleTo())
	assert.Equal(t, "  0\n  1\n> 2", m.View())
}

func TestSetItemsKeepsCursorInRange(t *testing.T) {
	m := New(seq(10), 4, renderInt)
	m.SetCursor(9)

	m.SetItems(seq(4))
	assert.Equal(t, 3, m.Cursor())

	got, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, 3, got)

	m.SetItems(nil)
	assert.Equal(t, 0, m.Cursor())
}

func TestSetHeight(t *testing.T) {
	m := New(seq(10), 0, renderInt)
	assert.Equal(t, 1, m.VisibleTo()-m.VisibleFrom())

	m.SetHeight(6)
	assert.Equal(t, 6, m.VisibleTo()-m.VisibleFrom())
}
