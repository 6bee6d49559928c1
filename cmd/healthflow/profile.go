// ABOUTME: CLI commands for profile fields and badges.
// ABOUTME: Field edits are direct replaces flowing through the autosave path.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/tracker"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile details",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		st := appState.Get()
		name := st.User.Name
		if name == "" {
			name = "(no display name)"
		}
		fmt.Printf("%s\n", name)
		if len(st.User.DietaryPreferences) > 0 {
			fmt.Printf("  preferences: %s\n", strings.Join(st.User.DietaryPreferences, ", "))
		}
		fmt.Printf("  streak:      %d days\n", st.Streak)
		fmt.Printf("  last visit:  %s\n", st.LastVisit)
		return nil
	},
}

var profileSetNameCmd = &cobra.Command{
	Use:   "set-name <name>",
	Short: "Change your display name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if strings.TrimSpace(args[0]) == "" {
			return fmt.Errorf("name must not be empty")
		}

		appState.Update(func(st models.AppState) models.AppState {
			return tracker.SetName(st, args[0])
		})
		color.Green("✓ Display name set to %s", args[0])
		return nil
	},
}

var profilePrefsCmd = &cobra.Command{
	Use:   "prefs <preference>...",
	Short: "Replace your dietary preferences",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		appState.Update(func(st models.AppState) models.AppState {
			return tracker.SetDietaryPreferences(st, args)
		})
		color.Green("✓ Preferences updated: %s", strings.Join(args, ", "))
		return nil
	},
}

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List achievement badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		for _, b := range appState.Get().Badges {
			mark := color.New(color.Faint).Sprint("·")
			if b.Achieved {
				mark = color.GreenString("✓")
			}
			fmt.Printf("  %s %s %-14s %s\n", mark, b.Icon, b.Name, color.New(color.Faint).Sprint(b.Description))
		}
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetNameCmd)
	profileCmd.AddCommand(profilePrefsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(badgesCmd)
}
