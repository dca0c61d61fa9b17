package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	listview "github.com/rshade/recordgrid/internal/tui/list"
)

const (
	clearAllHint = "[x] Clear all  [space] Toggle  [esc] Close"
	moreAbove    = "  ↑ more"
	moreBelow    = "  ↓ more"
)

// Dropdown is a multi-select option list for one filter field. The grid
// controller owns the selection; the dropdown only tracks its cursor.
type Dropdown struct {
	label   string
	open    bool
	list    *listview.Model[string]
	checked []string
}

// NewDropdown creates a closed dropdown over options.
func NewDropdown(label string, options []string) *Dropdown {
	d := &Dropdown{label: label}
	d.list = listview.New(options, dropdownHeight, d.renderOption)
	return d
}

func (d *Dropdown) renderOption(option string, cursor bool) string {
	box := "[ ]"
	if slices.Contains(d.checked, option) {
		box = "[x]"
	}
	line := box + " " + option
	if cursor {
		return TableSelectedStyle.Render("> " + line)
	}
	return "  " + line
}

// Label is the button text, e.g. "Status (2)".
func (d *Dropdown) Label(selected int) string {
	return FilterLabel(d.label, selected)
}

// Open shows the option list with the cursor on the first option.
func (d *Dropdown) Open() {
	d.open = true
	d.list.SetCursor(0)
}

// Close hides the option list.
func (d *Dropdown) Close() { d.open = false }

// SetHeight limits how many options show at once.
func (d *Dropdown) SetHeight(height int) {
	d.list.SetHeight(height)
}

// SetOptions replaces the options, e.g. after the records are reloaded.
func (d *Dropdown) SetOptions(options []string) {
	d.list.SetItems(options)
}

// Current is the option under the cursor.
func (d *Dropdown) Current() (string, bool) {
	return d.list.Current()
}

// Update moves the cursor.
func (d *Dropdown) Update(msg tea.Msg) {
	d.list.Update(msg)
}

// View renders the button, and the option list when open. checked holds the
// values currently selected in the controller.
func (d *Dropdown) View(checked []string, focused bool) string {
	d.checked = checked

	button := "▾ " + d.Label(len(checked))
	if focused {
		button = ActiveStyle.Render(button)
	}
	if !d.open {
		return button
	}

	body := d.list.View()
	if d.list.Len() == 0 {
		body = SubtleStyle.Render("(no options)")
	}
	if d.list.VisibleFrom() > 0 {
		body = SubtleStyle.Render(moreAbove) + "\n" + body
	}
	if d.list.VisibleTo() < d.list.Len() {
		body += "\n" + SubtleStyle.Render(moreBelow)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		button,
		BoxStyle.Render(body),
		SubtleStyle.Render(clearAllHint),
	)
}
