package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/effects"
)

// Theme holds accent-color-derived styles.
type Theme struct {
	accentStyle     lipgloss.Style // header background
	borderFocused   lipgloss.Style // focused flash offer
	borderUnfocused lipgloss.Style // other flash offers
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(0, 1),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1),
	}
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// PanelBorderStyle returns the border style for a flash offer depending on
// whether it receives effect keys.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// RenderSession draws one flash offer at its current stage.
func (t Theme) RenderSession(s effects.Session, focused bool, width int) string {
	o := s.Offer()
	accent := lipgloss.NewStyle().Foreground(effectColor(s.Kind)).Bold(true)

	var lines []string
	switch s.Stage {
	case effects.StageIntro:
		lines = []string{accent.Render("✦ " + o.Badge + " ✦"), dimStyle.Render("incoming…")}

	case effects.StageBadge:
		badge := accent.Render(o.Badge)
		if s.Remaining > 0 {
			clock := formatCountdown(s.Remaining)
			if s.Urgent() {
				clock = urgentStyle.Render("⏱ " + clock)
			} else {
				clock = dimStyle.Render("⏱ " + clock)
			}
			badge += "  " + clock
		}
		lines = append(lines, badge)
		if s.Kind == effects.KindEarn {
			lines = append(lines, fmt.Sprintf("%d coins", s.Coins))
		}
		if s.Kind == effects.KindCode {
			lines = append(lines, dimStyle.Render(o.Subtitle))
		}
		lines = append(lines, dimStyle.Render("o:open"+copyHint(o)+"  esc:close"))

	case effects.StageModal:
		lines = append(lines, accent.Render(o.Title), dimStyle.Render(o.Subtitle), "")
		lines = append(lines, o.Lines...)
		if o.Code != "" {
			lines = append(lines, "", "Use code "+codeStyle.Render(o.Code))
		}
		if s.Remaining > 0 {
			lines = append(lines, dimStyle.Render("Expires in "+formatCountdown(s.Remaining)))
		}
		lines = append(lines, "", dimStyle.Render("a:"+o.ClaimLabel+copyHint(o)+"  esc:close"))

	case effects.StageClaimed:
		lines = []string{claimedStyle.Render("✓ " + o.ClaimedTitle), o.ClaimedText, "", dimStyle.Render("esc:done")}
	}

	style := t.PanelBorderStyle(focused)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func copyHint(o effects.Offer) string {
	if o.Code == "" {
		return ""
	}
	return "  y:copy"
}

// formatCountdown renders a remaining duration as m:ss.
func formatCountdown(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
