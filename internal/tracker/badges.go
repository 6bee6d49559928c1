// ABOUTME: Badge achievement helper shared by the feature mutators.
// ABOUTME: Achieving an already-achieved badge is a no-op.
package tracker

import "github.com/harperreed/healthflow/internal/models"

// achieve flips the Achieved flag for the given badge id, copying the
// badge slice so the previous state stays untouched. Idempotent.
func achieve(st models.AppState, badgeID string) models.AppState {
	badges := make([]models.Badge, len(st.Badges))
	copy(badges, st.Badges)
	for i := range badges {
		if badges[i].ID == badgeID {
			badges[i].Achieved = true
		}
	}
	st.Badges = badges
	return st
}

// BadgeByID returns the badge with the given id, if present.
func BadgeByID(st models.AppState, badgeID string) (models.Badge, bool) {
	for _, b := range st.Badges {
		if b.ID == badgeID {
			return b, true
		}
	}
	return models.Badge{}, false
}
