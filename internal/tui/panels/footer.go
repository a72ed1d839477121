package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus string // "demo", "panel", "guide"
	Toast string // rendered toast, shown on the left when non-empty
	Help  string // rendered short help for the demo controls
}

// RenderFooter renders the context-sensitive footer bar.
// Left side: the toast, if any. Right side: keybinding hints for the focus.
func RenderFooter(props FooterProps, width int) string {
	left := props.Toast
	right := panelHints(props.Focus)
	if props.Focus == "demo" && props.Help != "" {
		right = props.Help
	}
	right += "  ?:guide  q:quit"

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return footerStyle.Width(width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}

// panelHints returns the keybinding hints for a given focus.
func panelHints(focus string) string {
	switch focus {
	case "panel":
		return "[/]:tab  j/k:select  y:copy  enter/esc:close"
	case "guide":
		return "j/k:scroll  esc:close"
	default:
		return "enter:open hub  p:play  1-5:flash"
	}
}
