// ABOUTME: Profile field mutators - direct replaces through the single updater.
// ABOUTME: Persistence flows through the same autosave path as every mutation.
package tracker

import (
	"time"

	"github.com/harperreed/healthflow/internal/models"
)

// SetName replaces the display name.
func SetName(st models.AppState, name string) models.AppState {
	st.User.Name = name
	return st
}

// SetDietaryPreferences replaces the preference list.
func SetDietaryPreferences(st models.AppState, prefs []string) models.AppState {
	next := make([]string, len(prefs))
	copy(next, prefs)
	st.User.DietaryPreferences = next
	return st
}

// TouchVisit updates the advisory last-visit timestamp.
func TouchVisit(st models.AppState, now time.Time) models.AppState {
	st.LastVisit = now.UTC().Format(time.RFC3339)
	return st
}
