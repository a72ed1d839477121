// Package phasetest provides a manual clock for driving phase flags in tests.
package phasetest

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type pending struct {
	due time.Duration
	seq int
	msg tea.Msg
}

// Clock is a phase.Scheduler that records scheduled messages instead of
// sleeping. Advance releases the messages that have become due.
type Clock struct {
	now     time.Duration
	seq     int
	pending []pending
}

// NewClock returns a clock at t=0.
func NewClock() *Clock { return &Clock{} }

// After records msg as due at now+d. The returned command yields nil so
// programs that execute it see no message.
func (c *Clock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	c.seq++
	c.pending = append(c.pending, pending{due: c.now + d, seq: c.seq, msg: msg})
	return func() tea.Msg { return nil }
}

// Now returns the simulated elapsed time.
func (c *Clock) Now() time.Duration { return c.now }

// Len returns the number of scheduled messages not yet released.
func (c *Clock) Len() int { return len(c.pending) }

// Advance moves the clock forward by d and returns the messages that became
// due, ordered by due time and then by scheduling order.
func (c *Clock) Advance(d time.Duration) []tea.Msg {
	c.now += d
	var due, rest []pending
	for _, p := range c.pending {
		if p.due <= c.now {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	c.pending = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	msgs := make([]tea.Msg, len(due))
	for i, p := range due {
		msgs[i] = p.msg
	}
	return msgs
}
