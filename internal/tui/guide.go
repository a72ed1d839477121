package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/tui/components"
)

const guideMarkdown = `# How to Use

## Basic States

- **Default** (b): shows the basic empty state
- **Gift Icon** (i): shows a new offer with the icon only
- **Gift + Text** (w): shows a new offer with icon and text
- **Stages** (f): shows the full offer message, then collapses

## Theme Options

- **Background** (B): toggle the coloured background
- **Dot** (D): toggle the notification dot

## Offer Types

- **Crown** (r): reward offer
- **Percent** (s): sale offer
- **Clock** (u): urgent, limited-time offer

## Triggers

- **Play** (p): play the new-offer animation
- **Highlight fade** (h): emphasise the indicator with the glow button
- **Glow fade** (g): dim the glow button border

## Flash Offers

- **Center** (1): countdown badge in the centre of the screen
- **Left** (2): reward badge on the left
- **Move** (3): bundle badge that moves in
- **Earn** (4): coin earnings widget
- **Code** (5): gift code hint

Open a badge with **o**, claim with **a**, copy its code with **y**
and close it with **esc**.

## Tips

- Combine options to create different offer styles
- Use the dot to draw attention to new offers
- Toggle the background for visibility on different themes
- Press **enter** on the indicator to open the offer hub
`

// guideWrap is the word-wrap width of the rendered guide.
const guideWrap = 72

// renderGuide renders the guide markdown for the terminal. The raw markdown
// is returned if rendering fails.
func renderGuide() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(guideWrap),
	)
	if err != nil {
		return guideMarkdown
	}
	out, err := r.Render(guideMarkdown)
	if err != nil {
		return guideMarkdown
	}
	return out
}

// Guide is the scrollable usage guide overlay.
type Guide struct {
	view components.ScrollView
	open bool
}

// NewGuide renders the guide once; resizing only changes the viewport.
func NewGuide(w, h int) Guide {
	return Guide{view: components.NewScrollView(w, h).SetContent(renderGuide())}
}

// Open reports whether the overlay is shown.
func (g Guide) Open() bool { return g.open }

// Toggle shows or hides the overlay.
func (g Guide) Toggle() Guide {
	g.open = !g.open
	if g.open {
		g.view = g.view.GotoTop()
	}
	return g
}

// SetSize resizes the overlay.
func (g Guide) SetSize(w, h int) Guide {
	g.view = g.view.SetSize(w, h)
	return g
}

// Update scrolls the guide.
func (g Guide) Update(msg tea.Msg) (Guide, tea.Cmd) {
	var cmd tea.Cmd
	g.view, cmd = g.view.Update(msg)
	return g, cmd
}

// View renders the visible part of the guide.
func (g Guide) View() string {
	return g.view.View()
}
