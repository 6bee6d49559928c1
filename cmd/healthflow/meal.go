// ABOUTME: CLI commands for the AI meal plan.
// ABOUTME: Suggestion failures degrade to "no suggestions", never a hard error.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/suggest"
	"github.com/harperreed/healthflow/internal/tracker"
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "AI-assisted meal planning",
	Long: `AI-assisted meal planning from your pantry.

Examples:
  healthflow meal suggest chicken broccoli rice
  healthflow meal list`,
}

var mealSuggestCmd = &cobra.Command{
	Use:   "suggest <ingredient>...",
	Short: "Generate meal suggestions from ingredients",
	Long: `Generate meal suggestions from the ingredients you have at home.
The generated set replaces the current meal plan.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if cfg.GeminiAPIKey == "" {
			return fmt.Errorf("meal suggestions need an API key - set gemini_api_key in your config or GEMINI_API_KEY")
		}

		client := suggest.NewGeminiClient(cfg.GeminiAPIKey)
		client.Model = cfg.GeminiModel

		fmt.Println("Consulting the AI chef...")
		meals := suggest.SuggestOrEmpty(cmd.Context(), client, args, logger)
		if len(meals) == 0 {
			color.Yellow("⚠ Could not generate recipes right now. Try again in a moment.")
			return nil
		}

		next := appState.Update(func(st models.AppState) models.AppState {
			return tracker.ReplaceMeals(st, meals)
		})

		color.Green("✓ Generated %d meals", len(meals))
		printMeals(next)
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		st := appState.Get()
		if len(st.Meals) == 0 {
			fmt.Println("No meal plan yet. Run 'healthflow meal suggest <ingredients>'.")
			return nil
		}
		printMeals(st)
		return nil
	},
}

func printMeals(st models.AppState) {
	for _, m := range st.Meals {
		fmt.Printf("  %-9s %-30s %4d kcal  P:%dg C:%dg F:%dg\n",
			m.Type, truncate(m.Name, 30), m.Calories,
			m.Macros.Protein, m.Macros.Carbs, m.Macros.Fat)
		if len(m.Ingredients) > 0 {
			fmt.Printf("            %s\n", color.New(color.Faint).Sprint(truncate(strings.Join(m.Ingredients, ", "), 60)))
		}
	}

	macros := tracker.TotalMacros(st)
	fmt.Printf("\n  Total: %d kcal (P:%dg C:%dg F:%dg)\n",
		tracker.TotalCalories(st), macros.Protein, macros.Carbs, macros.Fat)
}

func init() {
	mealCmd.AddCommand(mealSuggestCmd)
	mealCmd.AddCommand(mealListCmd)
	rootCmd.AddCommand(mealCmd)
}
