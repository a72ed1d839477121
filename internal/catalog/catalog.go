// Package catalog holds the static sample content listed by the offer panel.
package catalog

// Banner is a coloured tag shown next to a gift code.
type Banner struct {
	Text  string
	Color string // purple, red, blue
}

// Reward is one item granted by a gift code.
type Reward struct {
	Type   string
	Amount string
	Icon   string // Gift, Star, Sword; empty for none
}

// Event describes the in-game event attached to a gift code.
type Event struct {
	Title       string
	Description string
}

// GiftCode is a redeemable code in the "codes" tab.
type GiftCode struct {
	ID          int
	Code        string
	Description string
	Banners     []Banner
	Event       *Event
	Rewards     []Reward
	Expires     string
}

// Offer is a promotional deal in the "offers" tab.
type Offer struct {
	ID          int
	Type        string // Discount, % Off, Item
	Title       string
	Description string
	Expires     string
	IsUrgent    bool
	IsImportant bool
	Shape       string // hexagon, diamond; empty for the default tile
}

// Day is one step of a login streak.
type Day struct {
	Day     int
	Reward  string
	Claimed bool
}

// RewardTrack is a progress item in the "rewards" tab. Streak tracks fill
// Days; point and referral tracks use Progress (0-100).
type RewardTrack struct {
	ID           int
	Title        string
	Description  string
	Color        string
	CurrentDay   int
	Days         []Day
	Progress     int
	NextReward   string
	PointsNeeded int
	Remaining    int
	ReferralURL  string
}

// ReferralURL is the copyable invite link shown under friend referrals.
const ReferralURL = "https://example.com/ref/123"

// GiftCodes returns the sample gift codes.
func GiftCodes() []GiftCode {
	return []GiftCode{
		{
			ID:          1,
			Code:        "EPICDRAGON",
			Description: "Epic Dragon Mount",
			Rewards: []Reward{
				{Type: "Mount", Amount: "Celestial Dragon Mount - Legendary flying companion that illuminates the night sky."},
			},
			Expires: "5 days",
		},
		{
			ID:          2,
			Code:        "SUMMERFEST",
			Description: "Summer Special Bundle",
			Rewards: []Reward{
				{Type: "Legendary Skin", Amount: "Dragon Slayer", Icon: "Sword"},
				{Type: "Gems", Amount: "1000", Icon: "Gift"},
			},
			Expires: "7 days",
		},
		{
			ID:          3,
			Code:        "WARLORDRISING",
			Description: "Warlord Conquest Campaign",
			Banners: []Banner{
				{Text: "Season 2", Color: "purple"},
				{Text: "Exclusive", Color: "red"},
				{Text: "Campaign", Color: "blue"},
			},
			Event: &Event{
				Title:       "Warlord Rising Event",
				Description: "Join the epic conquest campaign and lead your armies to victory. Unlock exclusive campaign rewards and experience the new storyline.",
			},
			Rewards: []Reward{
				{Type: "Campaign Access", Amount: "Full Season 2 Access", Icon: "Sword"},
				{Type: "Commander", Amount: "General Ironheart", Icon: "Star"},
				{Type: "Battle Points", Amount: "5,000", Icon: "Gift"},
				{Type: "Unique Banner", Amount: "Warlord Insignia", Icon: "Gift"},
			},
			Expires: "14 days",
		},
	}
}

// Offers returns the sample offers.
func Offers() []Offer {
	return []Offer{
		{ID: 1, Type: "Discount", Title: "50% Off In-App Purchase", Description: "First purchase only", Expires: "24 hours", IsUrgent: true, Shape: "hexagon"},
		{ID: 2, Type: "% Off", Title: "75% Off Premium Currency", Description: "Limited time offer", Expires: "3 days"},
		{ID: 3, Type: "Item", Title: "Free Legendary Sword", Description: "Login daily for 7 days", Expires: "14 days", IsImportant: true, Shape: "diamond"},
	}
}

// Rewards returns the sample reward tracks.
func Rewards() []RewardTrack {
	return []RewardTrack{
		{
			ID:          1,
			Title:       "Daily Login Streak",
			Description: "Log in daily to earn rewards",
			Color:       "emerald",
			CurrentDay:  5,
			Days: []Day{
				{Day: 1, Reward: "100 Gold", Claimed: true},
				{Day: 2, Reward: "200 Gold", Claimed: true},
				{Day: 3, Reward: "50 Gems", Claimed: true},
				{Day: 4, Reward: "500 Gold", Claimed: true},
				{Day: 5, Reward: "100 Gems", Claimed: true},
				{Day: 6, Reward: "1000 Gold"},
				{Day: 7, Reward: "Epic Chest"},
			},
		},
		{
			ID:           2,
			Title:        "BlueStacks Points",
			Description:  "250 points earned",
			Color:        "amber",
			Progress:     25,
			NextReward:   "Epic Chest",
			PointsNeeded: 750,
		},
		{
			ID:          3,
			Title:       "Friend Referrals",
			Description: "2/5 referrals",
			Color:       "blue",
			Progress:    40,
			NextReward:  "Legendary Skin",
			Remaining:   3,
			ReferralURL: ReferralURL,
		},
	}
}

// Copyables returns the strings a user can copy from each tab, in display
// order: gift codes for "codes" and referral links for "rewards".
func Copyables(tab string) []string {
	switch tab {
	case "codes":
		codes := GiftCodes()
		out := make([]string, len(codes))
		for i, c := range codes {
			out[i] = c.Code
		}
		return out
	case "rewards":
		var out []string
		for _, r := range Rewards() {
			if r.ReferralURL != "" {
				out = append(out, r.ReferralURL)
			}
		}
		return out
	}
	return nil
}
