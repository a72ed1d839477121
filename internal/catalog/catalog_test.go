package catalog

import "testing"

func TestGiftCodes(t *testing.T) {
	codes := GiftCodes()
	if len(codes) != 3 {
		t.Fatalf("got %d codes, want 3", len(codes))
	}
	want := []string{"EPICDRAGON", "SUMMERFEST", "WARLORDRISING"}
	for i, c := range codes {
		if c.Code != want[i] {
			t.Errorf("codes[%d] = %q, want %q", i, c.Code, want[i])
		}
		if len(c.Rewards) == 0 {
			t.Errorf("%s has no rewards", c.Code)
		}
	}
	if codes[2].Event == nil || len(codes[2].Banners) != 3 {
		t.Error("WARLORDRISING should carry an event and three banners")
	}
}

func TestRewards_Streak(t *testing.T) {
	streak := Rewards()[0]
	claimed := 0
	for _, d := range streak.Days {
		if d.Claimed {
			claimed++
		}
	}
	if claimed != streak.CurrentDay {
		t.Errorf("claimed days = %d, want CurrentDay %d", claimed, streak.CurrentDay)
	}
}

func TestCopyables(t *testing.T) {
	tests := []struct {
		tab  string
		want []string
	}{
		{"codes", []string{"EPICDRAGON", "SUMMERFEST", "WARLORDRISING"}},
		{"rewards", []string{ReferralURL}},
		{"offers", nil},
	}
	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			got := Copyables(tt.tab)
			if len(got) != len(tt.want) {
				t.Fatalf("Copyables(%q) = %v, want %v", tt.tab, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
