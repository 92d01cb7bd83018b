// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. It maps keys to actions, styles the screen buffer with the player's
// theme and hosts the menu, help and leaderboard screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is how often the play clock is redrawn and persisted.
const clockInterval = time.Second

// TickMsg drives the play clock.
type TickMsg time.Time

// tickCmd sends one TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
