// Package indicator implements the floating offer button: the pure mapping
// from an offer plus UI flags to one of four visual variants, and the model
// that owns the full-message and glow-fade phase timers.
package indicator

import (
	"github.com/LISSConsulting/LISSTech.OfferHub/internal/offer"
)

// Variant is one of the four mutually exclusive indicator renderings.
type Variant int

const (
	VariantGlowFade Variant = iota // emphasised right-edge star button
	VariantArrow                   // collapsed chevron
	VariantIconOnly                // icon with optional dot
	VariantIconText                // icon plus label, optionally two lines
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantGlowFade:
		return "glow-fade"
	case VariantArrow:
		return "arrow"
	case VariantIconOnly:
		return "icon-only"
	case VariantIconText:
		return "icon-text"
	default:
		return "unknown"
	}
}

// Props are the inputs the hub hands to the indicator.
type Props struct {
	Offer             offer.Data
	PanelOpen         bool
	PlayNewAnimation  bool
	ShowHighlightFade bool
	Active            bool
	ShowGlowFade      bool
}

// Phase is the indicator's own time-boxed state.
type Phase struct {
	FullMessage bool
	GlowFade    bool
}

// Appearance is everything needed to draw the indicator.
type Appearance struct {
	Variant     Variant
	Icon        offer.Icon
	Label       string
	Detail      string // second line, only during the full-message phase
	Dot         offer.Dot
	Background  offer.Background
	Pulse       bool // entrance pulse while the new-offer animation plays
	Animated    bool // moving gradient
	Dismissible bool // full-message dismiss control is shown
	ChevronOpen bool // arrow points outwards while the panel is open
	GlowFaded   bool // glow-fade button uses the dimmed border
	AriaLabel   string
}

const (
	labelOpen  = "Open offer hub"
	labelClose = "Close offer hub"
)

// Derive selects the indicator appearance. The first matching rule wins:
// glow-fade phase, then collapsed arrow, then icon only, then icon and text.
// It is a pure function of its arguments.
func Derive(p Props, ph Phase) Appearance {
	d := p.Offer
	aria := labelOpen
	if p.PanelOpen {
		aria = labelClose
	}

	if ph.GlowFade {
		label := d.Description
		if label == "" {
			label = d.Value
		}
		return Appearance{
			Variant:   VariantGlowFade,
			Icon:      offer.IconStar,
			Label:     label,
			Dot:       offer.DotFor(d),
			GlowFaded: p.ShowGlowFade,
			AriaLabel: labelOpen,
		}
	}

	if !d.IsNew {
		bg := offer.BackgroundNone
		if d.ShowBackground {
			bg = offer.BackgroundGray
		}
		return Appearance{
			Variant:     VariantArrow,
			Icon:        offer.IconChevron,
			Background:  bg,
			ChevronOpen: p.PanelOpen,
			AriaLabel:   aria,
		}
	}

	if d.Value == "" {
		return Appearance{
			Variant:    VariantIconOnly,
			Icon:       offer.IconFor(d),
			Dot:        offer.DotFor(d),
			Background: offer.BackgroundFor(d),
			Pulse:      p.PlayNewAnimation,
			AriaLabel:  aria,
		}
	}

	a := Appearance{
		Variant:     VariantIconText,
		Icon:        offer.IconFor(d),
		Label:       d.Value,
		Dot:         offer.DotFor(d),
		Background:  offer.BackgroundFor(d),
		Pulse:       p.PlayNewAnimation,
		Animated:    d.ShowBackground && d.IsNew,
		Dismissible: ph.FullMessage,
		AriaLabel:   aria,
	}
	if ph.FullMessage && d.Description != "" {
		a.Detail = d.Description
	}
	return a
}
