// ABOUTME: Tests for meal plan replacement and macro aggregation.
// ABOUTME: Suggestion runs replace the plan whole; 5 meals earn the chef badge.
package tracker

import (
	"testing"

	"github.com/harperreed/healthflow/internal/models"
)

func mealNamed(name string, calories int) models.Meal {
	return models.Meal{
		ID:       name,
		Name:     name,
		Type:     models.MealLunch,
		Calories: calories,
		Macros:   models.Macros{Protein: 20, Carbs: 30, Fat: 10},
	}
}

func TestReplaceMealsReplacesWhole(t *testing.T) {
	st := ReplaceMeals(models.DefaultState(), []models.Meal{
		mealNamed("oats", 300),
		mealNamed("salad", 250),
	})
	st = ReplaceMeals(st, []models.Meal{mealNamed("soup", 200)})

	if len(st.Meals) != 1 {
		t.Fatalf("len(Meals) = %d, want 1", len(st.Meals))
	}
	if st.Meals[0].Name != "soup" {
		t.Errorf("Meals[0].Name = %s, want soup", st.Meals[0].Name)
	}
}

func TestReplaceMealsChefBadge(t *testing.T) {
	four := []models.Meal{
		mealNamed("a", 1), mealNamed("b", 1), mealNamed("c", 1), mealNamed("d", 1),
	}
	st := ReplaceMeals(models.DefaultState(), four)
	if badgeAchieved(t, st, models.BadgeChef) {
		t.Fatal("chef achieved with 4 meals")
	}

	st = ReplaceMeals(st, append(four, mealNamed("e", 1)))
	if !badgeAchieved(t, st, models.BadgeChef) {
		t.Error("chef not achieved with 5 meals")
	}

	// Shrinking the plan later does not revoke the badge.
	st = ReplaceMeals(st, nil)
	if !badgeAchieved(t, st, models.BadgeChef) {
		t.Error("chef badge revoked by plan replacement")
	}
}

func TestTotalCaloriesAndMacros(t *testing.T) {
	st := ReplaceMeals(models.DefaultState(), []models.Meal{
		mealNamed("a", 300),
		mealNamed("b", 450),
	})

	if got := TotalCalories(st); got != 750 {
		t.Errorf("TotalCalories = %d, want 750", got)
	}
	macros := TotalMacros(st)
	if macros.Protein != 40 || macros.Carbs != 60 || macros.Fat != 20 {
		t.Errorf("TotalMacros = %+v, want 40/60/20", macros)
	}
}

func TestAchieveIsIdempotentAndCopies(t *testing.T) {
	st := models.DefaultState()
	before := st.Badges

	next := achieve(st, models.BadgeChef)
	next = achieve(next, models.BadgeChef)

	if !badgeAchieved(t, next, models.BadgeChef) {
		t.Error("badge not achieved")
	}
	for _, b := range before {
		if b.Achieved {
			t.Error("achieve mutated the previous state's badge slice")
		}
	}
}
