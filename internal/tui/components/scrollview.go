package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ScrollView is a fixed-size scrollable text area wrapping bubbles/viewport.
// Replacing the content keeps the scroll offset when the new content is
// still long enough, so re-rendering on a selection change does not jump.
type ScrollView struct {
	vp     viewport.Model
	width  int
	height int
}

// NewScrollView creates an empty ScrollView.
func NewScrollView(w, h int) ScrollView {
	return ScrollView{vp: viewport.New(w, h), width: w, height: h}
}

// SetContent replaces the rendered text.
func (v ScrollView) SetContent(s string) ScrollView {
	offset := v.vp.YOffset
	v.vp.SetContent(s)
	v.vp.SetYOffset(offset)
	return v
}

// GotoTop scrolls to the first line.
func (v ScrollView) GotoTop() ScrollView {
	v.vp.GotoTop()
	return v
}

// EnsureVisible scrolls the minimum amount so that line is on screen.
func (v ScrollView) EnsureVisible(line int) ScrollView {
	switch {
	case line < v.vp.YOffset:
		v.vp.SetYOffset(line)
	case line >= v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(line - v.vp.Height + 1)
	}
	return v
}

// SetSize resizes the view.
func (v ScrollView) SetSize(w, h int) ScrollView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	return v
}

// Offset returns the index of the first visible line.
func (v ScrollView) Offset() int {
	return v.vp.YOffset
}

// Update forwards scroll keys and mouse wheel events to the viewport.
func (v ScrollView) Update(msg tea.Msg) (ScrollView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// View renders the visible window.
func (v ScrollView) View() string {
	return v.vp.View()
}
