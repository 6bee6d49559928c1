// ABOUTME: Badge definitions for the gamification layer.
// ABOUTME: The badge set is fixed; only the achieved flag ever changes at runtime.
package models

// Badge ids. The set is immutable - badges are never added or removed
// at runtime, only their Achieved flag toggles.
const (
	BadgeH2OMaster = "h2o-master"
	BadgeEarlyBird = "early-bird"
	BadgeChef      = "chef"
	BadgeStreak7   = "streak-7"
)

// Badge is a single achievement definition.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Achieved    bool   `json:"achieved"`
}

// DefaultBadges returns the four badge definitions, all unachieved.
func DefaultBadges() []Badge {
	return []Badge{
		{ID: BadgeH2OMaster, Name: "H2O Master", Icon: "💧", Description: "Drink 3L of water in a single day"},
		{ID: BadgeEarlyBird, Name: "Early Bird", Icon: "🌅", Description: "Complete a workout before 8am"},
		{ID: BadgeChef, Name: "Healthy Chef", Icon: "🥗", Description: "Have 5 healthy meals on your plan"},
		{ID: BadgeStreak7, Name: "Active Week", Icon: "🔥", Description: "Keep your streak going for 7 days"},
	}
}

// normalizeBadges restores the fixed badge set while preserving any
// achieved flags present in the stored document. Unknown ids are
// dropped; missing ids come back unachieved.
func normalizeBadges(stored []Badge) []Badge {
	achieved := make(map[string]bool, len(stored))
	for _, b := range stored {
		if b.Achieved {
			achieved[b.ID] = true
		}
	}
	badges := DefaultBadges()
	for i := range badges {
		if achieved[badges[i].ID] {
			badges[i].Achieved = true
		}
	}
	return badges
}
