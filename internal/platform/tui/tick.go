// Package tui hosts the game in a Bubble Tea program. The tick message is
// the frame clock; keys and mouse releases are queued as intents between
// ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
