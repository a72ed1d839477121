package indicator

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
)

var (
	colorText      = lipgloss.Color("#F9FAFB")
	colorTextDim   = lipgloss.Color("#D1D5DB")
	colorChevron   = lipgloss.Color("#D1D5DB")
	colorGrayEdge  = lipgloss.Color("#374151")
	colorGlowFill  = lipgloss.Color("#1E3A8A")
	colorGlowEdge  = lipgloss.Color("#3B82F6")
	colorGlowFaded = lipgloss.Color("#1E40AF")
	colorGlowText  = lipgloss.Color("#BFDBFE")
	colorPulse     = lipgloss.Color("#A78BFA")
	colorDismiss   = lipgloss.Color("#9CA3AF")
)

// dotColors maps notification dots to their terminal colour.
var dotColors = map[offer.Dot]lipgloss.Color{
	offer.DotBlue:  lipgloss.Color("#3B82F6"),
	offer.DotRed:   lipgloss.Color("#EF4444"),
	offer.DotAmber: lipgloss.Color("#F59E0B"),
}

// iconColors holds the tint applied to each icon glyph.
var iconColors = map[offer.Icon]lipgloss.Color{
	offer.IconGift:      lipgloss.Color("#93C5FD"),
	offer.IconTag:       lipgloss.Color("#86EFAC"),
	offer.IconPercent:   lipgloss.Color("#D8B4FE"),
	offer.IconLightning: lipgloss.Color("#FDE047"),
	offer.IconSword:     lipgloss.Color("#FCA5A5"),
	offer.IconCrown:     lipgloss.Color("#FDE047"),
	offer.IconPackage:   lipgloss.Color("#FDBA74"),
	offer.IconClock:     lipgloss.Color("#FCD34D"),
	offer.IconStar:      lipgloss.Color("#93C5FD"),
}

// edgeBorder draws the top, bottom and left sides so the button sits flush
// against the right edge of the screen.
func edgeBorder(s lipgloss.Style, b lipgloss.Border) lipgloss.Style {
	return s.Border(b, true, false, true, true)
}

func renderDot(d offer.Dot) string {
	c, ok := dotColors[d]
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().Foreground(c).Render("●")
}

func renderIcon(i offer.Icon) string {
	s := lipgloss.NewStyle()
	if c, ok := iconColors[i]; ok {
		s = s.Foreground(c)
	}
	return s.Render(i.Glyph())
}

// Render draws an appearance as a lipgloss block. frame drives the moving
// gradient of animated backgrounds.
func Render(a Appearance, frame int) string {
	switch a.Variant {
	case VariantGlowFade:
		return renderGlowFade(a)
	case VariantArrow:
		return renderArrow(a)
	default:
		return renderIconButton(a, frame)
	}
}

func renderGlowFade(a Appearance) string {
	edge := colorGlowEdge
	if a.GlowFaded {
		edge = colorGlowFaded
	}
	body := renderIcon(offer.IconStar) + " " +
		lipgloss.NewStyle().Foreground(colorGlowText).Render(a.Label)
	if dot := renderDot(a.Dot); dot != "" {
		body += " " + dot
	}
	return edgeBorder(lipgloss.NewStyle(), lipgloss.ThickBorder()).
		BorderForeground(edge).
		Background(colorGlowFill).
		Padding(0, 1).
		Render(body)
}

func renderArrow(a Appearance) string {
	glyph := "‹"
	if a.ChevronOpen {
		glyph = "›"
	}
	s := lipgloss.NewStyle().Foreground(colorChevron).Padding(0, 1)
	if a.Background == offer.BackgroundGray {
		_, fill := a.Background.Gradient()
		s = edgeBorder(s, lipgloss.RoundedBorder()).
			BorderForeground(colorGrayEdge).
			Background(lipgloss.Color(fill))
	}
	return s.Render(glyph)
}

func renderIconButton(a Appearance, frame int) string {
	body := renderIcon(a.Icon)
	if a.Variant == VariantIconText {
		label := lipgloss.NewStyle().Foreground(colorText).Bold(true).Render(a.Label)
		if a.Detail != "" {
			detail := lipgloss.NewStyle().Foreground(colorTextDim).Render(a.Detail)
			label = lipgloss.JoinVertical(lipgloss.Left, label, detail)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", label)
	}
	if dot := renderDot(a.Dot); dot != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", dot)
	}
	if a.Dismissible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ",
			lipgloss.NewStyle().Foreground(colorDismiss).Render("×"))
	}

	s := lipgloss.NewStyle().Padding(0, 1)
	border := lipgloss.RoundedBorder()
	if a.Pulse {
		border = lipgloss.ThickBorder()
	}

	edge, mid := a.Background.Gradient()
	if a.Animated && frame%2 == 1 {
		edge, mid = mid, edge
	}
	switch {
	case edge != "":
		s = edgeBorder(s, border).
			BorderForeground(lipgloss.Color(edge)).
			Background(lipgloss.Color(mid))
		if a.Pulse {
			s = s.BorderForeground(colorPulse)
		}
	case a.Pulse:
		s = edgeBorder(s, border).BorderForeground(colorPulse)
	}
	return s.Render(body)
}
