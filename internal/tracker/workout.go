// ABOUTME: Workout mutators - suggestion refresh and completion.
// ABOUTME: Completing a workout is the only event that increments the streak.
package tracker

import (
	"time"

	"github.com/harperreed/healthflow/internal/models"
)

// earlyBirdCutoffHour is the local hour before which a completed
// workout earns the early-bird badge.
const earlyBirdCutoffHour = 8

// streakBadgeDays is the streak length that earns the active-week badge.
const streakBadgeDays = 7

// SetWorkouts replaces the workout list with a fresh suggestion set.
func SetWorkouts(st models.AppState, workouts []models.Workout) models.AppState {
	next := make([]models.Workout, len(workouts))
	copy(next, workouts)
	st.Workouts = next
	return st
}

// CompleteWorkout records a finished session: the streak grows by
// exactly one, and time-based badges are evaluated. Starting a workout
// mutates nothing - only completion counts.
func CompleteWorkout(st models.AppState, completedAt time.Time) models.AppState {
	st.Streak++

	if completedAt.Hour() < earlyBirdCutoffHour {
		st = achieve(st, models.BadgeEarlyBird)
	}
	if st.Streak >= streakBadgeDays {
		st = achieve(st, models.BadgeStreak7)
	}
	return st
}

// WorkoutByID returns the workout with the given id, if present.
func WorkoutByID(st models.AppState, id string) (models.Workout, bool) {
	for _, w := range st.Workouts {
		if w.ID == id {
			return w, true
		}
	}
	return models.Workout{}, false
}
