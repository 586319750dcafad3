// Package tui provides the Bubble Tea shell for the 2048 game.
// It handles the terminal UI loop, input mapping, animation timing and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance running animations.
type TickMsg time.Time

// SettleMsg tells the model to finish a deferred move.
// Gen guards against settling a turn that an undo or new game replaced.
type SettleMsg struct {
	Gen int
}

// tickCmd returns a Bubble Tea command that sends a tick at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// settleCmd fires a SettleMsg after delay.
func settleCmd(delay time.Duration, gen int) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return SettleMsg{Gen: gen} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SettleMsg{Gen: gen}
	})
}
