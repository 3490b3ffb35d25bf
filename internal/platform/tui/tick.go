// Package tui provides the Bubble Tea integration for the simulator.
// It handles the terminal UI loop, input mapping, and the animated
// walk view served both locally and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an animation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate (ticks per second).
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
