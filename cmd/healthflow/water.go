// ABOUTME: CLI commands for hydration logging.
// ABOUTME: water add/rm/today over the shared state store.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/tracker"
)

var cupSizeML int

var waterCmd = &cobra.Command{
	Use:     "water",
	Aliases: []string{"w"},
	Short:   "Track water intake",
	Long: `Track water intake towards the 3000ml daily goal.

Examples:
  healthflow water add            # One cup (250ml)
  healthflow water add 500        # Custom amount
  healthflow water today          # Today's log and progress
  healthflow water rm <timestamp> # Remove an entry`,
}

var waterAddCmd = &cobra.Command{
	Use:   "add [ml]",
	Short: "Log water intake",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		amount := cupSizeML
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v <= 0 {
				return fmt.Errorf("invalid amount: %s", args[0])
			}
			amount = v
		}

		now := time.Now()
		before, _ := tracker.BadgeByID(appState.Get(), models.BadgeH2OMaster)
		next := appState.Update(func(st models.AppState) models.AppState {
			return tracker.LogWater(st, amount, now)
		})

		total := tracker.DayTotal(next, now)
		color.Green("✓ Logged %dml", amount)
		fmt.Printf("  Today: %d / %dml\n", total, tracker.DailyGoalML)

		if after, _ := tracker.BadgeByID(next, models.BadgeH2OMaster); after.Achieved && !before.Achieved {
			color.Yellow("🏆 Badge earned: %s", after.Name)
		} else if total >= tracker.DailyGoalML {
			fmt.Println("  Daily goal reached! 🎉")
		}
		return nil
	},
}

var waterRmCmd = &cobra.Command{
	Use:   "rm <timestamp>",
	Short: "Remove a hydration entry by its exact timestamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		date := args[0]
		found := false
		for _, l := range appState.Get().Hydration {
			if l.Date == date {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no entry with timestamp %s", date)
		}

		appState.Update(func(st models.AppState) models.AppState {
			return tracker.RemoveLog(st, date)
		})
		color.Green("✓ Removed entry %s", date)
		return nil
	},
}

var waterTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's hydration log and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		now := time.Now()
		st := appState.Get()
		logs := tracker.LogsOn(st, now)
		total := tracker.DayTotal(st, now)

		if len(logs) == 0 {
			fmt.Println("No entries today. Time to hydrate!")
			return nil
		}

		for _, l := range logs {
			fmt.Printf("  %s  %4dml  %s\n", formatClock(l.Date), l.Amount, color.New(color.Faint).Sprint(l.Date))
		}
		fmt.Printf("\n  Total: %d / %dml\n", total, tracker.DailyGoalML)
		if total >= tracker.DailyGoalML {
			color.Green("  Daily goal reached! 🎉")
		} else {
			fmt.Printf("  %dml to go.\n", tracker.DailyGoalML-total)
		}
		return nil
	},
}

func init() {
	waterAddCmd.Flags().IntVar(&cupSizeML, "cup", 250, "default cup size in ml")

	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterRmCmd)
	waterCmd.AddCommand(waterTodayCmd)
	rootCmd.AddCommand(waterCmd)
}
