// ABOUTME: CLI commands for workout routines and completion.
// ABOUTME: Completing a workout grows the streak; generating replaces the list.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/tracker"
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"wo"},
	Short:   "Manage workout routines",
	Long: `Manage workout routines and record completed sessions.

Examples:
  healthflow workout generate      # Load suggested routines
  healthflow workout list          # Show the current routines
  healthflow workout complete w1   # Record a finished session`,
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current workout routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		workouts := appState.Get().Workouts
		if len(workouts) == 0 {
			fmt.Println("No workouts loaded. Run 'healthflow workout generate' for suggestions.")
			return nil
		}

		for _, w := range workouts {
			fmt.Printf("%s  %-22s %2dm  %-6s %s\n",
				color.New(color.Faint).Sprintf("%-8s", truncate(w.ID, 8)),
				w.Title, w.Duration, w.Difficulty,
				color.New(color.Faint).Sprint(truncate(w.Description, 40)))
			for _, ex := range w.Exercises {
				if ex.Reps != "" {
					fmt.Printf("    - %s (%d x %s)\n", ex.Name, ex.Sets, ex.Reps)
				} else {
					fmt.Printf("    - %s (%ds)\n", ex.Name, ex.Time)
				}
			}
		}
		return nil
	},
}

var workoutGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Replace the workout list with suggested routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		next := appState.Update(func(st models.AppState) models.AppState {
			return tracker.SetWorkouts(st, tracker.SuggestedWorkouts())
		})

		color.Green("✓ Loaded %d suggested workouts", len(next.Workouts))
		return nil
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Record a completed workout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		if len(args) == 1 {
			if _, ok := tracker.WorkoutByID(appState.Get(), args[0]); !ok {
				return fmt.Errorf("unknown workout: %s", args[0])
			}
		}

		before := appState.Get()
		next := appState.Update(func(st models.AppState) models.AppState {
			return tracker.CompleteWorkout(st, time.Now())
		})

		color.Green("✓ Workout complete!")
		fmt.Printf("  Streak: %d days 🔥\n", next.Streak)
		announceNewBadges(before, next)
		return nil
	},
}

// announceNewBadges prints any badge that flipped during the update.
func announceNewBadges(before, after models.AppState) {
	for _, b := range after.Badges {
		prev, _ := tracker.BadgeByID(before, b.ID)
		if b.Achieved && !prev.Achieved {
			color.Yellow("🏆 Badge earned: %s", b.Name)
		}
	}
}

func init() {
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutGenerateCmd)
	workoutCmd.AddCommand(workoutCompleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
