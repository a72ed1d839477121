// Package offer defines the declarative offer value shown by the hub
// indicator, plus the rules that map it to icons, backgrounds and dots.
package offer

import (
	"fmt"
	"strings"
)

// Type selects the indicator icon and background gradient.
type Type int

const (
	TypeCode Type = iota
	TypeDiscount
	TypePercentOff
	TypeItem
	TypeFlash
)

var typeLabels = map[Type]string{
	TypeCode:       "Code",
	TypeDiscount:   "Discount",
	TypePercentOff: "% Off",
	TypeItem:       "Item",
	TypeFlash:      "Flash",
}

// String returns the display label, e.g. "% Off".
func (t Type) String() string {
	if s, ok := typeLabels[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType converts a label into a Type. Matching is case-insensitive and
// also accepts the CLI-friendly "percent-off" spelling.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "code":
		return TypeCode, nil
	case "discount":
		return TypeDiscount, nil
	case "% off", "%off", "percent-off", "percentoff", "percent":
		return TypePercentOff, nil
	case "item":
		return TypeItem, nil
	case "flash":
		return TypeFlash, nil
	}
	return TypeCode, fmt.Errorf("offer: unknown type %q (want Code, Discount, %% Off, Item or Flash)", s)
}

// Importance controls the visual weight of the notification dot.
type Importance int

const (
	Normal Importance = iota
	Important
)

// String returns "Normal" or "Important".
func (i Importance) String() string {
	if i == Important {
		return "Important"
	}
	return "Normal"
}

// Data describes the currently active offer. It is a value: callers replace
// it wholesale rather than mutating a shared copy.
type Data struct {
	IsNew      bool
	Importance Importance
	IsUrgent   bool
	Type       Type
	Value      string
	// Description is the optional second line; empty means absent.
	Description    string
	ShowBackground bool
	ShowDot        bool
}

// Default is the hub's fallback offer when the caller supplies none.
func Default() Data {
	return Data{
		Importance: Normal,
		Type:       TypeCode,
		Value:      "Gift Code",
	}
}

// IconOnly reports whether a new offer should render without a label.
func (d Data) IconOnly() bool {
	return d.IsNew && d.Value == ""
}
