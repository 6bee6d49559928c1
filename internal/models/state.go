// ABOUTME: AppState document model - the single per-user profile document.
// ABOUTME: Defines defaults and defensive normalization for documents read from the cloud.
package models

import "time"

// UserProfile holds display identity and diet preferences.
type UserProfile struct {
	Name               string   `json:"name"`
	DietaryPreferences []string `json:"dietaryPreferences"`
}

// HydrationLog is a single water intake entry.
// Date is an RFC 3339 timestamp and doubles as the entry's identity:
// removal matches on the exact timestamp, never on display position.
type HydrationLog struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"` // milliliters
}

// AppState is the full application state for one user. It is persisted
// as a single self-contained JSON document and always replaced whole on
// write - there are no field-level remote updates.
type AppState struct {
	User      UserProfile    `json:"user"`
	Hydration []HydrationLog `json:"hydration"`
	Workouts  []Workout      `json:"workouts"`
	Meals     []Meal         `json:"meals"`
	Badges    []Badge        `json:"badges"`
	Streak    int            `json:"streak"`
	LastVisit string         `json:"lastVisit"`
}

// DefaultState returns a fresh anonymous state: empty logs, all badges
// unachieved, streak zero.
func DefaultState() AppState {
	return AppState{
		User:      UserProfile{Name: "", DietaryPreferences: []string{}},
		Hydration: []HydrationLog{},
		Workouts:  []Workout{},
		Meals:     []Meal{},
		Badges:    DefaultBadges(),
		Streak:    0,
		LastVisit: time.Now().UTC().Format(time.RFC3339),
	}
}

// Normalize repairs a document read from the store. The wire format has
// no schema version, so missing or malformed fields are defaulted here
// rather than propagated.
func (s AppState) Normalize() AppState {
	if s.User.DietaryPreferences == nil {
		s.User.DietaryPreferences = []string{}
	}
	if s.Hydration == nil {
		s.Hydration = []HydrationLog{}
	}
	if s.Workouts == nil {
		s.Workouts = []Workout{}
	}
	if s.Meals == nil {
		s.Meals = []Meal{}
	}
	s.Badges = normalizeBadges(s.Badges)
	if s.Streak < 0 {
		s.Streak = 0
	}
	if s.LastVisit == "" {
		s.LastVisit = time.Now().UTC().Format(time.RFC3339)
	}
	return s
}
