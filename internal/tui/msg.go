package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FollowUpFlag names the timer that collapses the full-message preset once
// its emphasis window has passed.
const FollowUpFlag = "demo.follow-up"

// tickMsg is sent every second for the clock, countdowns and animation.
type tickMsg time.Time

// tickCmd schedules the next one-second tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
