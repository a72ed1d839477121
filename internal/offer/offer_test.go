package offer

import (
	"strings"
	"testing"
)

func TestIconFor(t *testing.T) {
	tests := []struct {
		name string
		data Data
		want Icon
	}{
		{"code", Data{Type: TypeCode}, IconGift},
		{"discount", Data{Type: TypeDiscount}, IconTag},
		{"percent off", Data{Type: TypePercentOff}, IconPercent},
		{"flash", Data{Type: TypeFlash}, IconLightning},
		{"item sword", Data{Type: TypeItem, Value: "Dragon Sword"}, IconSword},
		{"item sword case-insensitive", Data{Type: TypeItem, Value: "SWORDFISH"}, IconSword},
		{"item crown", Data{Type: TypeItem, Value: "Golden Crown"}, IconCrown},
		{"item package", Data{Type: TypeItem, Value: "Mystery Box"}, IconPackage},
		{"item empty value", Data{Type: TypeItem}, IconPackage},
		{"unknown type", Data{Type: Type(42)}, IconGift},
		{"urgent item", Data{Type: TypeItem, Value: "Dragon Sword", IsUrgent: true}, IconClock},
		{"urgent code", Data{Type: TypeCode, IsUrgent: true}, IconClock},
		{"urgent flash", Data{Type: TypeFlash, IsUrgent: true}, IconClock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IconFor(tt.data); got != tt.want {
				t.Errorf("IconFor(%+v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestBackgroundFor(t *testing.T) {
	tests := []struct {
		name string
		data Data
		want Background
	}{
		{"hidden", Data{IsNew: true, Type: TypeFlash}, BackgroundNone},
		{"not new is gray", Data{ShowBackground: true, Type: TypeFlash}, BackgroundGray},
		{"percent off", Data{IsNew: true, ShowBackground: true, Type: TypePercentOff}, BackgroundIndigo},
		{"item", Data{IsNew: true, ShowBackground: true, Type: TypeItem}, BackgroundAmber},
		{"urgent discount", Data{IsNew: true, ShowBackground: true, Type: TypeDiscount, IsUrgent: true}, BackgroundRed},
		{"plain discount", Data{IsNew: true, ShowBackground: true, Type: TypeDiscount}, BackgroundIndigo},
		{"flash", Data{IsNew: true, ShowBackground: true, Type: TypeFlash}, BackgroundGold},
		{"code default", Data{IsNew: true, ShowBackground: true, Type: TypeCode}, BackgroundIndigo},
		{"urgent code default", Data{IsNew: true, ShowBackground: true, Type: TypeCode, IsUrgent: true}, BackgroundIndigo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackgroundFor(tt.data); got != tt.want {
				t.Errorf("BackgroundFor(%+v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestBackground_Gradient(t *testing.T) {
	edge, mid := BackgroundNone.Gradient()
	if edge != "" || mid != "" {
		t.Errorf("none gradient = %q/%q, want empty", edge, mid)
	}
	edge, mid = BackgroundIndigo.Gradient()
	if edge != "#1E1B4B" || mid != "#312E81" {
		t.Errorf("indigo gradient = %q/%q", edge, mid)
	}
	edge, mid = BackgroundGray.Gradient()
	if edge != mid {
		t.Errorf("gray should be flat, got %q/%q", edge, mid)
	}
}

func TestDotFor(t *testing.T) {
	tests := []struct {
		name string
		data Data
		want Dot
	}{
		{"hidden", Data{IsUrgent: true}, DotNone},
		{"urgent beats important", Data{ShowDot: true, IsUrgent: true, Importance: Important}, DotAmber},
		{"important", Data{ShowDot: true, Importance: Important}, DotRed},
		{"normal", Data{ShowDot: true}, DotBlue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DotFor(tt.data); got != tt.want {
				t.Errorf("DotFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"Code", TypeCode, false},
		{"discount", TypeDiscount, false},
		{"% Off", TypePercentOff, false},
		{"percent-off", TypePercentOff, false},
		{" ITEM ", TypeItem, false},
		{"flash", TypeFlash, false},
		{"bogus", TypeCode, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestType_String(t *testing.T) {
	if got := TypePercentOff.String(); got != "% Off" {
		t.Errorf("TypePercentOff.String() = %q", got)
	}
	if got := Type(99).String(); !strings.Contains(got, "99") {
		t.Errorf("unknown type String() = %q", got)
	}
}

func TestData_IconOnly(t *testing.T) {
	if !(Data{IsNew: true}).IconOnly() {
		t.Error("new offer with empty value should be icon only")
	}
	if (Data{IsNew: true, Value: "x"}).IconOnly() {
		t.Error("labelled offer should not be icon only")
	}
	if (Data{}).IconOnly() {
		t.Error("offer that is not new should not be icon only")
	}
}

func TestPresets(t *testing.T) {
	prev := Data{ShowBackground: true, ShowDot: true, Type: TypeFlash, Value: "old"}

	if got := Basic(prev); got.IsNew || got.ShowBackground || got.ShowDot || got.Value != "" {
		t.Errorf("Basic should reset everything, got %+v", got)
	}
	if got := JustIcon(prev); !got.IconOnly() {
		t.Errorf("JustIcon should be icon only, got %+v", got)
	}
	if got := IconWithWord(prev); got.Value != "Gift Code" || !got.IsNew {
		t.Errorf("IconWithWord = %+v", got)
	}

	r := Reward(prev)
	if r.Type != TypeItem || !r.ShowBackground || !r.ShowDot {
		t.Errorf("Reward should keep theme flags, got %+v", r)
	}
	if IconFor(r) != IconPackage {
		t.Errorf("Reward icon = %v, want package", IconFor(r))
	}

	u := Urgent(prev)
	if !u.IsUrgent || u.Type != TypeDiscount || IconFor(u) != IconClock {
		t.Errorf("Urgent = %+v", u)
	}
	if BackgroundFor(u) != BackgroundRed {
		t.Errorf("Urgent background = %v, want red", BackgroundFor(u))
	}

	fm := FullMessage(prev)
	if fm.Description == "" || !fm.ShowBackground || fm.ShowDot {
		t.Errorf("FullMessage = %+v", fm)
	}
	if fu := FullMessageFollowUp(fm); fu.IsNew || fu.Value != "" {
		t.Errorf("FullMessageFollowUp should collapse to the arrow, got %+v", fu)
	}
}

func TestToggles(t *testing.T) {
	d := IconWithWord(Data{})
	d = ToggleBackground(d)
	if !d.ShowBackground {
		t.Fatal("ToggleBackground should turn background on")
	}
	d = ToggleDot(d)
	if !d.ShowDot || d.Value != "Gift Code" {
		t.Fatalf("ToggleDot should keep the rest of the offer, got %+v", d)
	}
	d = ToggleBackground(d)
	if d.ShowBackground {
		t.Error("second ToggleBackground should turn background off")
	}
}

func TestLookupPreset(t *testing.T) {
	for _, name := range PresetNames() {
		if _, err := LookupPreset(name); err != nil {
			t.Errorf("LookupPreset(%q): %v", name, err)
		}
	}
	if _, err := LookupPreset("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
