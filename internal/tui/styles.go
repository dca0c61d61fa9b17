package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader   = lipgloss.Color("62")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("252")
	ColorSubtle   = lipgloss.Color("241")
	ColorAccent   = lipgloss.Color("39")
	ColorSelected = lipgloss.Color("57")
	ColorBorder   = lipgloss.Color("240")

	ColorActive   = lipgloss.Color("34")
	ColorInactive = lipgloss.Color("245")
	ColorPending  = lipgloss.Color("220")
	ColorArchived = lipgloss.Color("196")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)
	ActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	EmptyStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorLabel)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(ColorSelected)

	CurrentPageStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(ColorAccent)

	statusStyles = map[string]lipgloss.Style{
		"Active":   lipgloss.NewStyle().Foreground(ColorActive),
		"Inactive": lipgloss.NewStyle().Foreground(ColorInactive),
		"Pending":  lipgloss.NewStyle().Foreground(ColorPending),
		"Archived": lipgloss.NewStyle().Foreground(ColorArchived),
	}
)

// StatusStyle returns the badge style for a record status. Unknown statuses
// render like Inactive.
func StatusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return statusStyles["Inactive"]
}
