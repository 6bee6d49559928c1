// ABOUTME: Tests for the Gemini suggestion client and the fail-open helper.
// ABOUTME: Uses httptest to stub generateContent responses.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/healthflow/internal/models"
)

func geminiResponse(t *testing.T, meals any) []byte {
	t.Helper()
	inner, err := json.Marshal(map[string]any{"meals": meals})
	require.NoError(t, err)

	outer, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"parts": []map[string]string{{"text": string(inner)}},
			}},
		},
	})
	require.NoError(t, err)
	return outer
}

func TestSuggestParsesMeals(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write(geminiResponse(t, []map[string]any{
			{
				"id": "m1", "name": "Chicken Bowl", "type": "lunch",
				"calories": 520,
				"macros":   map[string]int{"protein": 42, "carbs": 48, "fat": 14},
				"ingredients":      []string{"chicken", "rice"},
				"preparationSteps": []string{"Cook rice", "Grill chicken"},
			},
		}))
	}))
	defer server.Close()

	c := &GeminiClient{APIKey: "key", BaseURL: server.URL}
	meals, err := c.Suggest(context.Background(), []string{"chicken", "rice"})
	require.NoError(t, err)

	assert.Contains(t, gotPath, "gemini-2.0-flash:generateContent")
	assert.Contains(t, gotBody, "chicken, rice")
	assert.Contains(t, gotBody, "responseMimeType")

	require.Len(t, meals, 1)
	assert.Equal(t, "Chicken Bowl", meals[0].Name)
	assert.Equal(t, models.MealLunch, meals[0].Type)
	assert.Equal(t, 520, meals[0].Calories)
	assert.Equal(t, 42, meals[0].Macros.Protein)
}

func TestSuggestSanitizesMeals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(geminiResponse(t, []map[string]any{
			{"name": "No ID Soup", "type": "dinner"},
			{"name": "Mystery Plate", "type": "midnight-feast"},
			{"name": "   ", "type": "lunch"},
		}))
	}))
	defer server.Close()

	c := &GeminiClient{APIKey: "key", BaseURL: server.URL}
	meals, err := c.Suggest(context.Background(), []string{"leftovers"})
	require.NoError(t, err)

	require.Len(t, meals, 2, "nameless meals are dropped")
	assert.NotEmpty(t, meals[0].ID, "missing ids are backfilled")
	assert.Equal(t, models.MealSnack, meals[1].Type, "unknown types default to snack")
	assert.NotNil(t, meals[0].Ingredients)
	assert.NotNil(t, meals[0].PreparationSteps)
}

func TestSuggestRequiresIngredients(t *testing.T) {
	c := &GeminiClient{APIKey: "key"}
	_, err := c.Suggest(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoIngredients)
}

func TestSuggestRequiresAPIKey(t *testing.T) {
	c := &GeminiClient{APIKey: "  "}
	_, err := c.Suggest(context.Background(), []string{"rice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestSuggestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := &GeminiClient{APIKey: "key", BaseURL: server.URL}
	_, err := c.Suggest(context.Background(), []string{"rice"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "503"))
}

type failingProvider struct{ err error }

func (p failingProvider) Suggest(context.Context, []string) ([]models.Meal, error) {
	return nil, p.err
}

func TestSuggestOrEmptyDegradesFailures(t *testing.T) {
	logger := log.New(io.Discard)

	meals := SuggestOrEmpty(context.Background(), failingProvider{err: errors.New("quota")}, []string{"rice"}, logger)
	assert.Nil(t, meals, "provider failures degrade to no suggestions")
}
