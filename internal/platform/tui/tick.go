// Package tui drives the Neon Breaker simulation from a Bubble Tea program.
// It maps keys and the mouse to intents, runs the frame and direction timers,
// and paints snapshots onto a colored cell screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DirectionInterval is the period of the timer that turns held keys into a
// paddle direction. It runs independently of the frame rate.
const DirectionInterval = 16 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// DirectionTickMsg is sent to recompute the paddle direction from held keys.
type DirectionTickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func directionTickCmd() tea.Cmd {
	return tea.Tick(DirectionInterval, func(t time.Time) tea.Msg {
		return DirectionTickMsg(t)
	})
}
