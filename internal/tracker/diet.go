// ABOUTME: Diet plan mutators and macro aggregation helpers.
// ABOUTME: A suggestion run replaces the whole meal plan, never merges.
package tracker

import "github.com/harperreed/healthflow/internal/models"

// chefBadgeMeals is the plan size that earns the healthy-chef badge.
const chefBadgeMeals = 5

// ReplaceMeals swaps the entire meal plan for the newly suggested set.
// A generation call is a full replace, not a merge - stale suggestions
// never linger next to fresh ones.
func ReplaceMeals(st models.AppState, meals []models.Meal) models.AppState {
	next := make([]models.Meal, len(meals))
	copy(next, meals)
	st.Meals = next

	if len(st.Meals) >= chefBadgeMeals {
		st = achieve(st, models.BadgeChef)
	}
	return st
}

// TotalCalories sums the calories across the current meal plan.
func TotalCalories(st models.AppState) int {
	total := 0
	for _, m := range st.Meals {
		total += m.Calories
	}
	return total
}

// TotalMacros sums the macro triple across the current meal plan.
func TotalMacros(st models.AppState) models.Macros {
	var total models.Macros
	for _, m := range st.Meals {
		total.Protein += m.Macros.Protein
		total.Carbs += m.Macros.Carbs
		total.Fat += m.Macros.Fat
	}
	return total
}
