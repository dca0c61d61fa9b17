package tui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode selects how a page is rendered.
type OutputMode int

const (
	// OutputModePlain writes tab-aligned text with no ANSI sequences.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a colored, bordered table once.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the richest mode stdout supports. plain and noColor
// force plain output. forceColor allows styled output on a non-terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv, forceColor, noColor, plain)
}

func detectOutputMode(isTTY bool, getenv func(string) string, forceColor, noColor, plain bool) OutputMode {
	if plain || noColor || getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if strings.EqualFold(getenv("TERM"), "dumb") {
		return OutputModePlain
	}
	if !isTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
