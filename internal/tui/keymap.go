package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/LISSConsulting/LISSTech.OfferHub/internal/effects"
)

// GlobalKeyBindings lists the keys the root model handles before any other
// dispatch, whatever has focus.
var GlobalKeyBindings = []string{"q", "ctrl+c", "?"}

// IsGlobalKey reports whether key is a global keybinding.
func IsGlobalKey(key string) bool {
	for _, k := range GlobalKeyBindings {
		if k == key {
			return true
		}
	}
	return false
}

// KeyMap holds the demo control bindings used while the panel is closed.
type KeyMap struct {
	// Basic states
	Basic        key.Binding
	JustIcon     key.Binding
	IconWithWord key.Binding
	FullMessage  key.Binding

	// Theme options
	ToggleBackground key.Binding
	ToggleDot        key.Binding

	// Offer types
	Reward key.Binding
	Sale   key.Binding
	Urgent key.Binding

	// Triggers
	Play          key.Binding
	HighlightFade key.Binding
	GlowFade      key.Binding

	// Indicator
	Click   key.Binding
	Dismiss key.Binding

	// Flash offers
	Flash key.Binding
	Open  key.Binding
	Claim key.Binding
	Copy  key.Binding
	Close key.Binding

	Guide key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the demo key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Basic:            key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "default")),
		JustIcon:         key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "gift icon")),
		IconWithWord:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "gift + text")),
		FullMessage:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "full message")),
		ToggleBackground: key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "background")),
		ToggleDot:        key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "dot")),
		Reward:           key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reward")),
		Sale:             key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sale")),
		Urgent:           key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "urgent")),
		Play:             key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play animation")),
		HighlightFade:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "highlight fade")),
		GlowFade:         key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "glow fade")),
		Click:            key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open hub")),
		Dismiss:          key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		Flash:            key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "flash offer")),
		Open:             key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open flash")),
		Claim:            key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "claim")),
		Copy:             key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy code")),
		Close:            key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close flash")),
		Guide:            key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "guide")),
		Quit:             key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Play, k.Flash, k.Guide, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Basic, k.JustIcon, k.IconWithWord, k.FullMessage},
		{k.ToggleBackground, k.ToggleDot, k.Reward, k.Sale, k.Urgent},
		{k.Play, k.HighlightFade, k.GlowFade, k.Click, k.Dismiss},
		{k.Flash, k.Open, k.Claim, k.Copy, k.Close},
		{k.Guide, k.Quit},
	}
}

// flashKeys maps the Flash keys to the flash offer they start.
var flashKeys = map[string]effects.Kind{
	"1": effects.KindCenter,
	"2": effects.KindLeft,
	"3": effects.KindMove,
	"4": effects.KindEarn,
	"5": effects.KindCode,
}
