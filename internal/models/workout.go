// ABOUTME: Workout and Exercise models for guided exercise sessions.
// ABOUTME: Difficulty is a closed enum of easy, medium, hard.
package models

import "github.com/google/uuid"

// Difficulty rates how demanding a workout is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValidDifficulty checks if a string is a valid difficulty.
func IsValidDifficulty(s string) bool {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Exercise is one step of a workout routine.
type Exercise struct {
	Name string `json:"name"`
	Reps string `json:"reps,omitempty"`
	Sets int    `json:"sets,omitempty"`
	Time int    `json:"time,omitempty"` // seconds
}

// Workout is a guided exercise session.
type Workout struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"` // minutes
	Difficulty  Difficulty `json:"difficulty"`
	Exercises   []Exercise `json:"exercises"`
}

// NewWorkout creates a workout with a generated id.
func NewWorkout(title string, difficulty Difficulty, duration int) *Workout {
	return &Workout{
		ID:         uuid.NewString(),
		Title:      title,
		Difficulty: difficulty,
		Duration:   duration,
	}
}

// WithDescription sets the workout description.
func (w *Workout) WithDescription(desc string) *Workout {
	w.Description = desc
	return w
}

// WithExercises sets the exercise list.
func (w *Workout) WithExercises(exercises ...Exercise) *Workout {
	w.Exercises = exercises
	return w
}
