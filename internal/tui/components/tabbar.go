// Package components provides the small reusable widgets shared by the
// offer hub panels.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Tab is one entry of a TabBar. ID is the stable key used by callers;
// Label is what gets drawn.
type Tab struct {
	ID    string
	Label string
}

// TabBar renders a row of tabs with one active.
type TabBar struct {
	tabs   []Tab
	active int
	width  int
}

// NewTabBar creates a TabBar with the first tab active.
func NewTabBar(tabs ...Tab) TabBar {
	return TabBar{tabs: tabs}
}

// Active returns the index of the active tab.
func (t TabBar) Active() int {
	return t.active
}

// ActiveID returns the ID of the active tab, or "" for an empty bar.
func (t TabBar) ActiveID() string {
	if len(t.tabs) == 0 {
		return ""
	}
	return t.tabs[t.active].ID
}

// Len returns the number of tabs.
func (t TabBar) Len() int {
	return len(t.tabs)
}

// Next activates the following tab, wrapping around.
func (t TabBar) Next() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + 1) % len(t.tabs)
	return t
}

// Prev activates the preceding tab, wrapping around.
func (t TabBar) Prev() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + len(t.tabs) - 1) % len(t.tabs)
	return t
}

// Select activates tab i. Out-of-range indexes are ignored.
func (t TabBar) Select(i int) TabBar {
	if i >= 0 && i < len(t.tabs) {
		t.active = i
	}
	return t
}

// SetWidth sets the render width. Zero leaves the row unpadded.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// View renders the tabs on one line separated by " │ ".
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(t.tabs))
	for i, tab := range t.tabs {
		if i == t.active {
			parts = append(parts, tabActiveStyle.Render(tab.Label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(tab.Label))
		}
	}

	line := strings.Join(parts, " │ ")
	if t.width > 0 {
		return lipgloss.NewStyle().MaxWidth(t.width).Width(t.width).Render(line)
	}
	return line
}
