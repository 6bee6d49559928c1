// ABOUTME: Meal suggestion provider contract and fail-open helper.
// ABOUTME: The provider is slow and unreliable; failures degrade to no suggestions.
package suggest

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/harperreed/healthflow/internal/models"
)

// ErrNoIngredients is returned when a suggestion is requested with an
// empty pantry.
var ErrNoIngredients = errors.New("at least one ingredient is required")

// Provider produces meal suggestions from a list of ingredients.
type Provider interface {
	Suggest(ctx context.Context, ingredients []string) ([]models.Meal, error)
}

// SuggestOrEmpty degrades any provider failure to an empty result.
// Suggestion errors never propagate as hard failures - the caller shows
// "no suggestions" and moves on.
func SuggestOrEmpty(ctx context.Context, p Provider, ingredients []string, logger *log.Logger) []models.Meal {
	meals, err := p.Suggest(ctx, ingredients)
	if err != nil {
		logger.Warn("meal suggestion failed", "err", err)
		return nil
	}
	return meals
}
