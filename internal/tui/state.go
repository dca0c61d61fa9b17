package tui

// ViewState is the screen the data table is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner before the table appears.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the table.
	ViewStateList
	// ViewStateDetail shows one record.
	ViewStateDetail
	// ViewStateQuitting is set just before the program exits.
	ViewStateQuitting
)

func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keySpace    = " "
	keyCategory = "c"
	keyStatus   = "t"
	keyClear    = "x"
	keyLeft     = "left"
	keyRight    = "right"
	keyPrevPage = "["
	keyNextPage = "]"
	keyHome     = "home"
	keyEnd      = "end"
)

// Layout constants.
const (
	defaultWidth  = 120
	defaultHeight = 30
	minHeight     = 5
	borderPadding = 2

	// chromeHeight is the number of lines around the table: title, controls,
	// footer and help. The header row is measured separately.
	chromeHeight = 4

	dropdownHeight = 8

	searchCharLimit = 100
	searchWidth     = 40
)

const msgSelectedOutOfBounds = "Error: selected record out of bounds"
