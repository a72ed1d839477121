package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/phase"
)

// ToastFlag is the phase flag name used by Toast expiries.
const ToastFlag = "toast"

var (
	toastStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	toastErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
)

// Toast is a one-line transient notice that hides itself after its window.
// Showing a new notice replaces the old one and restarts the window.
type Toast struct {
	flag  phase.Flag
	text  string
	isErr bool
}

// NewToast creates a hidden toast. A non-positive window means
// phase.CopyFeedbackWindow.
func NewToast(window time.Duration, sched phase.Scheduler) Toast {
	if window <= 0 {
		window = phase.CopyFeedbackWindow
	}
	return Toast{flag: phase.NewFlag(ToastFlag, window, sched)}
}

// Show displays text and schedules it to disappear.
func (t Toast) Show(text string, isErr bool) (Toast, tea.Cmd) {
	t.text = text
	t.isErr = isErr
	var cmd tea.Cmd
	t.flag, cmd = t.flag.Arm()
	return t, cmd
}

// Visible reports whether a notice is on screen.
func (t Toast) Visible() bool { return t.flag.On() }

// Text returns the visible notice, or "".
func (t Toast) Text() string {
	if !t.flag.On() {
		return ""
	}
	return t.text
}

// Update hides the toast when its expiry arrives.
func (t Toast) Update(msg tea.Msg) Toast {
	if msg, ok := msg.(phase.ExpiredMsg); ok {
		t.flag, _ = t.flag.Expire(msg)
	}
	return t
}

// View renders the notice, or "" when hidden.
func (t Toast) View() string {
	if !t.flag.On() {
		return ""
	}
	if t.isErr {
		return toastErrorStyle.Render("✗ " + t.text)
	}
	return toastStyle.Render("✓ " + t.text)
}
