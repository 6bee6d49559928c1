// ABOUTME: Meal and Macros models for the diet plan.
// ABOUTME: Meal type is a closed enum of breakfast, lunch, dinner, snack.
package models

// MealType classifies when a meal is eaten.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Macros is the protein/carbs/fat triple in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Meal is a single suggested recipe on the diet plan.
type Meal struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             MealType `json:"type"`
	Calories         int      `json:"calories"`
	Macros           Macros   `json:"macros"`
	Ingredients      []string `json:"ingredients"`
	PreparationSteps []string `json:"preparationSteps"`
}
