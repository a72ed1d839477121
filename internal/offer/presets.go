package offer

import (
	"fmt"
	"sort"
)

// Preset builds an offer from the previous one. Presets that describe a
// complete state ignore prev; the themed and typed presets keep its
// background and dot settings.
type Preset func(prev Data) Data

// Basic is the collapsed arrow with no decorations.
func Basic(Data) Data {
	return Data{Type: TypeCode}
}

// JustIcon is a new code offer without a label.
func JustIcon(Data) Data {
	return Data{IsNew: true, Type: TypeCode}
}

// IconWithWord is a new code offer labelled "Gift Code".
func IconWithWord(Data) Data {
	return Data{IsNew: true, Type: TypeCode, Value: "Gift Code"}
}

// FullMessage is the staged entrance offer. Callers play the new-offer
// animation after applying it and switch to FullMessageFollowUp once the
// emphasis window has passed.
func FullMessage(Data) Data {
	return Data{
		IsNew:          true,
		Importance:     Important,
		Type:           TypePercentOff,
		Value:          "Important Offer!",
		Description:    "Get 50% off your next purchase!",
		ShowBackground: true,
	}
}

// FullMessageFollowUp collapses the staged offer back to the arrow.
func FullMessageFollowUp(Data) Data {
	return Data{
		Importance:     Important,
		Type:           TypePercentOff,
		ShowBackground: true,
	}
}

// Reward is a new item offer for a legendary crown.
func Reward(prev Data) Data {
	prev.IsNew = true
	prev.Importance = Normal
	prev.IsUrgent = false
	prev.Type = TypeItem
	prev.Value = "Reward"
	prev.Description = "Get a free legendary crown!"
	return prev
}

// Sale is a new percent-off offer.
func Sale(prev Data) Data {
	prev.IsNew = true
	prev.Importance = Normal
	prev.IsUrgent = false
	prev.Type = TypePercentOff
	prev.Value = "50% Off"
	prev.Description = "Special sale - 50% off everything!"
	return prev
}

// Urgent is a new limited-time discount.
func Urgent(prev Data) Data {
	prev.IsNew = true
	prev.Importance = Normal
	prev.IsUrgent = true
	prev.Type = TypeDiscount
	prev.Value = "Ends Soon"
	prev.Description = "Limited time offer - Ends in 12 hours!"
	return prev
}

// ToggleBackground flips ShowBackground on the previous offer.
func ToggleBackground(prev Data) Data {
	prev.ShowBackground = !prev.ShowBackground
	return prev
}

// ToggleDot flips ShowDot on the previous offer.
func ToggleDot(prev Data) Data {
	prev.ShowDot = !prev.ShowDot
	return prev
}

var presets = map[string]Preset{
	"basic":        Basic,
	"icon":         JustIcon,
	"icon-text":    IconWithWord,
	"full-message": FullMessage,
	"reward":       Reward,
	"sale":         Sale,
	"urgent":       Urgent,
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("offer: unknown preset %q (want one of %v)", name, PresetNames())
	}
	return p, nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
