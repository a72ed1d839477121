package tui

// Minimum terminal size the demo renders at.
const (
	minWidth  = 60
	minHeight = 20
)

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed region geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Effects        Rect // flash offers, left of the hub
	Hub            Rect // indicator and panel, flush right
	TooSmall       bool // true when terminal is below the minimum 60×20
}

// Calculate computes the layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true below the minimum size.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Hub: 50% of width, clamped to [30, 66], right-aligned
//   - Effects: remaining width on the left
func Calculate(width, height int) Layout {
	if width < minWidth || height < minHeight {
		return Layout{TooSmall: true}
	}

	bodyH := height - 2 // subtract header + footer rows

	hubW := width * 50 / 100
	if hubW < 30 {
		hubW = 30
	}
	if hubW > 66 {
		hubW = 66
	}
	effectsW := width - hubW

	return Layout{
		Header:  Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer:  Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Effects: Rect{X: 0, Y: 1, Width: effectsW, Height: bodyH},
		Hub:     Rect{X: effectsW, Y: 1, Width: hubW, Height: bodyH},
	}
}
