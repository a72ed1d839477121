package components

import (
	"strings"
	"testing"
	"time"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/phase/phasetest"
)

func TestToast_ShowAndExpire(t *testing.T) {
	clk := phasetest.NewClock()
	toast := NewToast(0, clk)
	if toast.Visible() || toast.View() != "" {
		t.Fatal("new toast should be hidden")
	}

	toast, cmd := toast.Show("Code Copied!", false)
	if cmd == nil {
		t.Fatal("Show should schedule an expiry")
	}
	if !strings.Contains(toast.View(), "Code Copied!") {
		t.Errorf("View() = %q", toast.View())
	}

	for _, msg := range clk.Advance(1999 * time.Millisecond) {
		toast = toast.Update(msg)
	}
	if !toast.Visible() {
		t.Fatal("toast hidden before 2s")
	}
	for _, msg := range clk.Advance(time.Millisecond) {
		toast = toast.Update(msg)
	}
	if toast.Visible() || toast.Text() != "" {
		t.Fatal("toast should hide at 2s")
	}
}

func TestToast_ReplaceRestartsWindow(t *testing.T) {
	clk := phasetest.NewClock()
	toast := NewToast(2*time.Second, clk)
	toast, _ = toast.Show("first", false)
	for _, msg := range clk.Advance(time.Second) {
		toast = toast.Update(msg)
	}
	toast, _ = toast.Show("Copy failed", true)
	for _, msg := range clk.Advance(time.Second) {
		toast = toast.Update(msg)
	}
	if toast.Text() != "Copy failed" {
		t.Fatalf("Text() = %q, want the replacement to survive the first expiry", toast.Text())
	}
	if !strings.Contains(toast.View(), "✗") {
		t.Errorf("error toast should use the error marker: %q", toast.View())
	}
}
