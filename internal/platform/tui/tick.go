// Package tui is the Bubble Tea layer of the arcade. It owns the frame loop,
// turns terminal key events into game actions, and draws each game's cell
// buffer through lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of one simulation tick.
type TickMsg time.Time

// tickCmd schedules the next simulation tick for the given rate in ticks per
// second. Each tick reschedules the next one, so drift is not compensated.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
