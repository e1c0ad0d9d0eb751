// Package tui provides the Bubble Tea integration: the terminal session, the
// menu/playing/game-over flow, input mapping and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game step. Seq identifies the session that scheduled
// it: ticks from a discarded session carry a stale Seq and are dropped, so a
// restart can never leave two tick chains running.
type TickMsg struct {
	Seq  int
	Time time.Time
}

// tickCmd schedules the next tick after the given interval.
func tickCmd(seq int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
