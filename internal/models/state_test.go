// ABOUTME: Tests for the AppState document defaults and normalization.
// ABOUTME: Validates defensive repair of documents read from the store.
package models

import (
	"testing"
	"time"
)

func TestDefaultState(t *testing.T) {
	st := DefaultState()

	if st.User.Name != "" {
		t.Errorf("Name = %q, want empty", st.User.Name)
	}
	if st.Hydration == nil || len(st.Hydration) != 0 {
		t.Error("expected empty non-nil hydration log")
	}
	if st.Streak != 0 {
		t.Errorf("Streak = %d, want 0", st.Streak)
	}
	if len(st.Badges) != 4 {
		t.Fatalf("len(Badges) = %d, want 4", len(st.Badges))
	}
	for _, b := range st.Badges {
		if b.Achieved {
			t.Errorf("badge %s achieved on fresh state", b.ID)
		}
	}
	if _, err := time.Parse(time.RFC3339, st.LastVisit); err != nil {
		t.Errorf("LastVisit %q is not RFC 3339: %v", st.LastVisit, err)
	}
}

func TestNormalizeDefaultsNilFields(t *testing.T) {
	st := AppState{Streak: -3}.Normalize()

	if st.User.DietaryPreferences == nil {
		t.Error("expected non-nil dietary preferences")
	}
	if st.Hydration == nil || st.Workouts == nil || st.Meals == nil {
		t.Error("expected non-nil collections")
	}
	if st.Streak != 0 {
		t.Errorf("Streak = %d, want 0", st.Streak)
	}
	if st.LastVisit == "" {
		t.Error("expected LastVisit to be defaulted")
	}
	if len(st.Badges) != 4 {
		t.Errorf("len(Badges) = %d, want 4", len(st.Badges))
	}
}

func TestNormalizeBadgesPreservesAchieved(t *testing.T) {
	st := AppState{
		Badges: []Badge{
			{ID: BadgeH2OMaster, Achieved: true},
			{ID: "bogus-badge", Achieved: true},
		},
	}.Normalize()

	if len(st.Badges) != 4 {
		t.Fatalf("len(Badges) = %d, want 4", len(st.Badges))
	}
	for _, b := range st.Badges {
		switch b.ID {
		case BadgeH2OMaster:
			if !b.Achieved {
				t.Error("h2o-master achievement lost in normalization")
			}
		case "bogus-badge":
			t.Error("unknown badge survived normalization")
		default:
			if b.Achieved {
				t.Errorf("badge %s unexpectedly achieved", b.ID)
			}
		}
		if b.Name == "" || b.Icon == "" {
			t.Errorf("badge %s missing definition fields", b.ID)
		}
	}
}

func TestNormalizeKeepsStoredValues(t *testing.T) {
	st := AppState{
		User:      UserProfile{Name: "Ana", DietaryPreferences: []string{"vegetarian"}},
		Hydration: []HydrationLog{{Date: "2026-08-30T08:00:00Z", Amount: 250}},
		Streak:    5,
		LastVisit: "2026-08-30T09:00:00Z",
	}.Normalize()

	if st.User.Name != "Ana" {
		t.Errorf("Name = %q, want Ana", st.User.Name)
	}
	if len(st.Hydration) != 1 || st.Hydration[0].Amount != 250 {
		t.Error("hydration log altered by normalization")
	}
	if st.Streak != 5 {
		t.Errorf("Streak = %d, want 5", st.Streak)
	}
	if st.LastVisit != "2026-08-30T09:00:00Z" {
		t.Errorf("LastVisit = %q, want stored value", st.LastVisit)
	}
}
