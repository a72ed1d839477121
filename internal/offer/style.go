package offer

import "strings"

// Icon identifies an indicator glyph.
type Icon int

const (
	IconGift Icon = iota
	IconTag
	IconPercent
	IconLightning
	IconSword
	IconCrown
	IconPackage
	IconClock
	IconStar
	IconChevron
)

var iconNames = [...]string{"gift", "tag", "percent", "lightning", "sword", "crown", "package", "clock", "star", "chevron"}

var iconGlyphs = [...]string{"🎁", "🏷", "%", "⚡", "🗡", "👑", "📦", "⏰", "★", "‹"}

// String returns the icon name, e.g. "clock".
func (i Icon) String() string {
	if int(i) >= 0 && int(i) < len(iconNames) {
		return iconNames[i]
	}
	return "gift"
}

// Glyph returns the terminal glyph for the icon.
func (i Icon) Glyph() string {
	if int(i) >= 0 && int(i) < len(iconGlyphs) {
		return iconGlyphs[i]
	}
	return iconGlyphs[IconGift]
}

// IconFor selects the offer icon. Urgency always wins over the type.
func IconFor(d Data) Icon {
	if d.IsUrgent {
		return IconClock
	}
	switch d.Type {
	case TypeCode:
		return IconGift
	case TypeDiscount:
		return IconTag
	case TypePercentOff:
		return IconPercent
	case TypeFlash:
		return IconLightning
	case TypeItem:
		v := strings.ToLower(d.Value)
		if strings.Contains(v, "sword") {
			return IconSword
		}
		if strings.Contains(v, "crown") {
			return IconCrown
		}
		return IconPackage
	default:
		return IconGift
	}
}

// Background identifies an indicator background treatment.
type Background int

const (
	BackgroundNone Background = iota
	BackgroundIndigo
	BackgroundAmber
	BackgroundRed
	BackgroundGold
	BackgroundGray
)

var backgroundNames = [...]string{"none", "indigo", "amber", "red", "gold", "gray"}

// String returns the background name.
func (b Background) String() string {
	if int(b) >= 0 && int(b) < len(backgroundNames) {
		return backgroundNames[b]
	}
	return "none"
}

// Gradient returns the edge and middle colours of the background. Flat
// backgrounds return the same colour twice; BackgroundNone returns "".
func (b Background) Gradient() (edge, mid string) {
	switch b {
	case BackgroundIndigo:
		return "#1E1B4B", "#312E81"
	case BackgroundAmber:
		return "#422006", "#713F12"
	case BackgroundRed:
		return "#431407", "#7C2D12"
	case BackgroundGold:
		return "#713F12", "#A16207"
	case BackgroundGray:
		return "#1F2937", "#1F2937"
	default:
		return "", ""
	}
}

// BackgroundFor selects the background for an offer. Nothing is drawn
// unless ShowBackground is set, and offers that are not new get flat gray.
func BackgroundFor(d Data) Background {
	if !d.ShowBackground {
		return BackgroundNone
	}
	if !d.IsNew {
		return BackgroundGray
	}
	switch {
	case d.Type == TypePercentOff:
		return BackgroundIndigo
	case d.Type == TypeItem:
		return BackgroundAmber
	case d.Type == TypeDiscount && d.IsUrgent:
		return BackgroundRed
	case d.Type == TypeFlash:
		return BackgroundGold
	default:
		return BackgroundIndigo
	}
}

// Dot is the colour of the notification dot overlay.
type Dot int

const (
	DotNone Dot = iota
	DotBlue
	DotRed
	DotAmber
)

// String returns the dot colour name.
func (d Dot) String() string {
	switch d {
	case DotBlue:
		return "blue"
	case DotRed:
		return "red"
	case DotAmber:
		return "amber"
	default:
		return "none"
	}
}

// DotFor selects the notification dot for an offer.
func DotFor(d Data) Dot {
	if !d.ShowDot {
		return DotNone
	}
	if d.IsUrgent {
		return DotAmber
	}
	if d.Importance == Important {
		return DotRed
	}
	return DotBlue
}
