// Package phase provides time-boxed boolean flags for bubbletea models.
//
// A Flag is turned on by Arm and turns itself off when its expiry message
// comes back through Update. Every Arm, Cancel and Clear bumps a generation
// counter, so at most one expiry per flag is ever live: older ticks still
// arrive but are ignored.
package phase

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EmphasisWindow is the shared duration of the new-offer emphasis timers:
// the full-message line, the glow-fade button and the hub's active gate.
const EmphasisWindow = 5 * time.Second

// CopyFeedbackWindow is how long a "Copied!" notice stays visible.
const CopyFeedbackWindow = 2 * time.Second

// ExpiredMsg is delivered when an armed flag's window has elapsed.
type ExpiredMsg struct {
	Name string
	Gen  uint64
}

// Scheduler turns a delayed message into a bubbletea command.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// TickScheduler schedules messages with tea.Tick.
type TickScheduler struct{}

// After implements Scheduler.
func (TickScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Flag is a self-clearing boolean. The zero value is an off flag that uses
// TickScheduler and EmphasisWindow.
type Flag struct {
	name   string
	window time.Duration
	sched  Scheduler
	on     bool
	gen    uint64
}

// NewFlag creates an off flag. A nil scheduler means TickScheduler and a
// non-positive window means EmphasisWindow.
func NewFlag(name string, window time.Duration, sched Scheduler) Flag {
	if window <= 0 {
		window = EmphasisWindow
	}
	if sched == nil {
		sched = TickScheduler{}
	}
	return Flag{name: name, window: window, sched: sched}
}

// Name returns the flag's message name.
func (f Flag) Name() string { return f.name }

// On reports whether the flag is currently set.
func (f Flag) On() bool { return f.on }

// Window returns the flag's expiry window.
func (f Flag) Window() time.Duration {
	if f.window <= 0 {
		return EmphasisWindow
	}
	return f.window
}

// Pending reports whether gen identifies the live expiry.
func (f Flag) Pending(gen uint64) bool { return f.gen == gen }

// Arm sets the flag and schedules its expiry, replacing any pending one.
func (f Flag) Arm() (Flag, tea.Cmd) {
	f.gen++
	f.on = true
	sched := f.sched
	if sched == nil {
		sched = TickScheduler{}
	}
	return f, sched.After(f.Window(), ExpiredMsg{Name: f.name, Gen: f.gen})
}

// Cancel drops the pending expiry and keeps the current value.
func (f Flag) Cancel() Flag {
	f.gen++
	return f
}

// Clear drops the pending expiry and turns the flag off.
func (f Flag) Clear() Flag {
	f = f.Cancel()
	f.on = false
	return f
}

// Set forces the value without scheduling anything. A pending expiry is
// dropped.
func (f Flag) Set(on bool) Flag {
	f = f.Cancel()
	f.on = on
	return f
}

// Expire turns the flag off if msg is its live expiry. It reports whether
// the message belonged to this flag and was applied.
func (f Flag) Expire(msg ExpiredMsg) (Flag, bool) {
	if msg.Name != f.name || msg.Gen != f.gen {
		return f, false
	}
	f.on = false
	return f, true
}
