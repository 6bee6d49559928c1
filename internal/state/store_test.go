// ABOUTME: Tests for the canonical state container.
// ABOUTME: Verifies Update notifies subscribers and Replace stays silent.
package state

import (
	"testing"

	"github.com/harperreed/healthflow/internal/models"
)

func TestUpdateNotifiesSubscribers(t *testing.T) {
	s := New()

	var seen []models.AppState
	s.Subscribe(func(st models.AppState) {
		seen = append(seen, st)
	})

	s.Update(func(st models.AppState) models.AppState {
		st.User.Name = "Ana"
		return st
	})
	s.Update(func(st models.AppState) models.AppState {
		st.Streak = 3
		return st
	})

	if len(seen) != 2 {
		t.Fatalf("subscriber called %d times, want 2", len(seen))
	}
	if seen[0].User.Name != "Ana" {
		t.Errorf("first notification Name = %q, want Ana", seen[0].User.Name)
	}
	if seen[1].Streak != 3 || seen[1].User.Name != "Ana" {
		t.Error("second notification missing accumulated changes")
	}
	if got := s.Get(); got.Streak != 3 {
		t.Errorf("Get().Streak = %d, want 3", got.Streak)
	}
}

func TestReplaceDoesNotNotify(t *testing.T) {
	s := New()

	calls := 0
	s.Subscribe(func(models.AppState) { calls++ })

	next := models.DefaultState()
	next.User.Name = "Carla"
	s.Replace(next)

	if calls != 0 {
		t.Errorf("subscriber called %d times on Replace, want 0", calls)
	}
	if got := s.Get(); got.User.Name != "Carla" {
		t.Errorf("Get().User.Name = %q, want Carla", got.User.Name)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New()

	calls := 0
	unsub := s.Subscribe(func(models.AppState) { calls++ })

	s.Update(func(st models.AppState) models.AppState { return st })
	unsub()
	s.Update(func(st models.AppState) models.AppState { return st })

	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1", calls)
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	s := New()
	s.Update(func(st models.AppState) models.AppState {
		st.User.DietaryPreferences = []string{"vegan"}
		return st
	})

	snap := s.Get()
	snap.User.Name = "mutated"

	if s.Get().User.Name == "mutated" {
		t.Error("mutating a snapshot leaked into the store")
	}
}
