// Package tui provides the bubbletea demo application that hosts the offer
// hub: demo controls, flash offers, the usage guide and toasts.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/effects"
)

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
	colorOrange = lipgloss.Color("#FFA54F")
	colorPink   = lipgloss.Color("#EC4899")
)

// Styles used across the TUI. Accent-dependent styles live on Theme.
var (
	dimStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	codeStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	urgentStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	claimedStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)
)

// effectColor returns the accent of a flash offer kind.
func effectColor(k effects.Kind) lipgloss.Color {
	switch k {
	case effects.KindCenter:
		return colorOrange
	case effects.KindLeft:
		return colorBlue
	case effects.KindMove:
		return colorYellow
	case effects.KindEarn:
		return colorGreen
	case effects.KindCode:
		return colorPink
	default:
		return colorWhite
	}
}
