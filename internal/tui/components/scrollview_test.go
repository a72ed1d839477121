package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

func TestNewScrollView(t *testing.T) {
	v := NewScrollView(40, 5)
	if v.width != 40 || v.height != 5 {
		t.Errorf("dimensions: got %dx%d, want 40x5", v.width, v.height)
	}
	if v.Offset() != 0 {
		t.Errorf("Offset: got %d, want 0", v.Offset())
	}
}

func TestScrollView_ShowsContent(t *testing.T) {
	v := NewScrollView(40, 5).SetContent("alpha\nbeta")
	view := v.View()
	for _, want := range []string{"alpha", "beta"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q: %q", want, view)
		}
	}
}

func TestScrollView_EnsureVisible(t *testing.T) {
	v := NewScrollView(40, 5).SetContent(numbered(20))

	v = v.EnsureVisible(3)
	if v.Offset() != 0 {
		t.Errorf("line already visible, offset moved to %d", v.Offset())
	}

	v = v.EnsureVisible(10)
	if v.Offset() != 6 {
		t.Errorf("Offset after EnsureVisible(10): got %d, want 6", v.Offset())
	}
	if !strings.Contains(v.View(), "line 10") {
		t.Errorf("line 10 not visible: %q", v.View())
	}

	v = v.EnsureVisible(2)
	if v.Offset() != 2 {
		t.Errorf("Offset after EnsureVisible(2): got %d, want 2", v.Offset())
	}
}

func TestScrollView_SetContentKeepsOffset(t *testing.T) {
	v := NewScrollView(40, 5).SetContent(numbered(20)).EnsureVisible(10)
	v = v.SetContent(numbered(20))
	if v.Offset() != 6 {
		t.Errorf("Offset after SetContent: got %d, want 6", v.Offset())
	}
	v = v.GotoTop()
	if v.Offset() != 0 {
		t.Errorf("Offset after GotoTop: got %d, want 0", v.Offset())
	}
}

func TestScrollView_UpdateScrolls(t *testing.T) {
	v := NewScrollView(40, 5).SetContent(numbered(20))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if v.Offset() == 0 {
		t.Error("pgdown should scroll down")
	}
}

func TestScrollView_SetSize(t *testing.T) {
	v := NewScrollView(40, 5).SetSize(60, 10)
	if v.width != 60 || v.height != 10 {
		t.Errorf("dimensions: got %dx%d, want 60x10", v.width, v.height)
	}
}
