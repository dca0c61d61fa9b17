// Package debounce coalesces bursts of input into a single delayed action
// for Bubble Tea programs.
//
// Each Schedule call issues a new pending handle and supersedes the previous
// one. The tick for a superseded handle still arrives as a FiredMsg, but
// Accept rejects it, so at most one action runs per quiescence window and a
// cancelled action never runs.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultWindow is the quiescence window for search input.
const DefaultWindow = 300 * time.Millisecond

// FiredMsg is delivered when a scheduled window elapses.
type FiredMsg struct {
	Key   string
	ID    uint64
	Value string
}

// Debouncer tracks the single pending action for one input. It is owned by
// one Bubble Tea model and must only be used from its Update.
type Debouncer struct {
	key     string
	window  time.Duration
	seq     uint64
	pending uint64 // 0 when nothing is pending
}

// New returns a debouncer for the input identified by key. A window of zero
// or less fires on the next message cycle.
func New(key string, window time.Duration) *Debouncer {
	return &Debouncer{key: key, window: window}
}

// Schedule replaces any pending action with one carrying value and returns
// the command that fires it after the window.
func (d *Debouncer) Schedule(value string) tea.Cmd {
	d.seq++
	d.pending = d.seq

	msg := FiredMsg{Key: d.key, ID: d.seq, Value: value}
	if d.window <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.window, func(time.Time) tea.Msg { return msg })
}

// Accept reports whether msg is the live pending action for this debouncer.
// A true result consumes the handle, so the same fire is never accepted twice.
func (d *Debouncer) Accept(msg FiredMsg) bool {
	if msg.Key != d.key || d.pending == 0 || msg.ID != d.pending {
		return false
	}
	d.pending = 0
	return true
}

// Cancel drops the pending action, if any.
func (d *Debouncer) Cancel() {
	d.pending = 0
}

// Pending reports whether an action is waiting to fire.
func (d *Debouncer) Pending() bool {
	return d.pending != 0
}
