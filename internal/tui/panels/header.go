// Package panels provides the offer panel and the header and footer bars of
// the offer hub demo.
package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
)

// HeaderProps holds all data needed to render the header bar.
// Variant is a string to avoid importing the indicator package.
type HeaderProps struct {
	Offer         offer.Data
	Variant       string // e.g. "full", "icon", "arrow"
	HighlightFade bool
	GlowFade      bool
	Flashes       int // running flash offers
	Elapsed       time.Duration
	Clock         time.Time
}

// FormatElapsed renders a duration as a compact string: "5s", "2m30s", "1h15m".
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// offerSummary describes the offer in a few words: its type and label, plus
// the new/urgent markers.
func offerSummary(d offer.Data) string {
	s := d.Type.String()
	if d.Value != "" {
		s += " " + fmt.Sprintf("%q", d.Value)
	}
	var marks []string
	if d.IsNew {
		marks = append(marks, "new")
	}
	if d.IsUrgent {
		marks = append(marks, "urgent")
	}
	if d.Importance == offer.Important {
		marks = append(marks, "important")
	}
	if len(marks) > 0 {
		s += " (" + strings.Join(marks, ", ") + ")"
	}
	return s
}

// RenderHeader renders the header bar. accentStyle is applied to the full
// header bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	variant := props.Variant
	if variant == "" {
		variant = "—"
	}

	parts := []string{
		"🎁 Offer Hub",
		"offer: " + offerSummary(props.Offer),
		"variant: " + variant,
		"highlight: " + onOff(props.HighlightFade),
		"glow: " + onOff(props.GlowFade),
	}
	if props.Flashes > 0 {
		parts = append(parts, fmt.Sprintf("flash: %d", props.Flashes))
	}
	if props.Elapsed > 0 {
		parts = append(parts, "up: "+FormatElapsed(props.Elapsed))
	}
	if !props.Clock.IsZero() {
		parts = append(parts, props.Clock.Format("15:04"))
	}

	return accentStyle.Width(width).MaxHeight(1).Render(strings.Join(parts, "  │  "))
}
