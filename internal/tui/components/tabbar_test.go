package components

import (
	"strings"
	"testing"
)

func threeTabs() TabBar {
	return NewTabBar(
		Tab{ID: "codes", Label: "Gift Codes"},
		Tab{ID: "offers", Label: "Offers"},
		Tab{ID: "rewards", Label: "Rewards"},
	)
}

func TestNewTabBar(t *testing.T) {
	tb := threeTabs()
	if tb.Active() != 0 || tb.ActiveID() != "codes" {
		t.Errorf("Active: got %d/%q, want 0/codes", tb.Active(), tb.ActiveID())
	}
	if tb.Len() != 3 {
		t.Errorf("Len: got %d, want 3", tb.Len())
	}
}

func TestTabBar_Next(t *testing.T) {
	tb := threeTabs()
	for _, want := range []string{"offers", "rewards", "codes"} {
		tb = tb.Next()
		if tb.ActiveID() != want {
			t.Errorf("ActiveID after Next: got %q, want %q", tb.ActiveID(), want)
		}
	}
}

func TestTabBar_Prev(t *testing.T) {
	tb := threeTabs()
	for _, want := range []string{"rewards", "offers", "codes"} {
		tb = tb.Prev()
		if tb.ActiveID() != want {
			t.Errorf("ActiveID after Prev: got %q, want %q", tb.ActiveID(), want)
		}
	}
}

func TestTabBar_Select(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{2, 2},
		{0, 0},
		{-1, 0}, // ignored
		{3, 0},  // ignored
	}
	for _, tt := range tests {
		tb := threeTabs().Select(tt.index)
		if tb.Active() != tt.want {
			t.Errorf("Select(%d): got %d, want %d", tt.index, tb.Active(), tt.want)
		}
	}
}

func TestTabBar_View_ContainsAllTabs(t *testing.T) {
	view := threeTabs().View()
	for _, label := range []string{"Gift Codes", "Offers", "Rewards"} {
		if !strings.Contains(view, label) {
			t.Errorf("View() missing label %q: got %q", label, view)
		}
	}
	if !strings.Contains(view, "│") {
		t.Errorf("View() missing separator: %q", view)
	}
}

func TestTabBar_Empty(t *testing.T) {
	tb := NewTabBar()
	if tb.View() != "" {
		t.Errorf("empty TabBar View() = %q, want empty string", tb.View())
	}
	if tb.ActiveID() != "" {
		t.Errorf("empty ActiveID() = %q", tb.ActiveID())
	}
	// Next/Prev on empty should not panic
	_ = tb.Next()
	_ = tb.Prev()
}

func TestTabBar_SetWidth(t *testing.T) {
	tb := threeTabs().SetWidth(50)
	if tb.width != 50 {
		t.Errorf("width: got %d, want 50", tb.width)
	}
}
