package tui

// FocusTarget identifies what currently receives keyboard input.
type FocusTarget int

const (
	FocusDemo  FocusTarget = iota // demo controls, indicator and flash offers
	FocusPanel                    // the open offer panel
	FocusGuide                    // the usage guide overlay
)

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusDemo:
		return "demo"
	case FocusPanel:
		return "panel"
	case FocusGuide:
		return "guide"
	default:
		return "unknown"
	}
}
