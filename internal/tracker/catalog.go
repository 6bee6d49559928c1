// ABOUTME: Built-in workout catalog used by the suggestion refresh.
// ABOUTME: Three stock routines spanning the difficulty range.
package tracker

import "github.com/harperreed/healthflow/internal/models"

// SuggestedWorkouts returns the stock routine set used when the user
// asks for fresh workout suggestions.
func SuggestedWorkouts() []models.Workout {
	return []models.Workout{
		{
			ID:          "w1",
			Title:       "Full Body Blitz",
			Description: "A quick whole-body session for days with little time.",
			Duration:    20,
			Difficulty:  models.DifficultyMedium,
			Exercises: []models.Exercise{
				{Name: "Jumping Jacks", Reps: "30", Sets: 3, Time: 30},
				{Name: "Squats", Reps: "15", Sets: 3, Time: 45},
				{Name: "Push-ups", Reps: "10", Sets: 3, Time: 45},
				{Name: "Plank", Sets: 1, Time: 60},
			},
		},
		{
			ID:          "w2",
			Title:       "Cardio Burn",
			Description: "Fat-burning focus with high cardiovascular demand.",
			Duration:    30,
			Difficulty:  models.DifficultyHard,
			Exercises: []models.Exercise{
				{Name: "Burpees", Reps: "10", Sets: 4, Time: 45},
				{Name: "Running in Place", Sets: 4, Time: 60},
				{Name: "Mountain Climbers", Reps: "20", Sets: 4, Time: 30},
			},
		},
		{
			ID:          "w3",
			Title:       "Evening Yoga",
			Description: "Stretch and unwind at the end of the day.",
			Duration:    15,
			Difficulty:  models.DifficultyEasy,
			Exercises: []models.Exercise{
				{Name: "Child's Pose", Sets: 1, Time: 60},
				{Name: "Sun Salutation", Reps: "5", Sets: 2, Time: 120},
				{Name: "Spinal Stretch", Sets: 1, Time: 60},
			},
		},
	}
}
