// ABOUTME: Gemini-backed meal suggestion client over the Generative Language REST API.
// ABOUTME: Requests JSON-mode responses and drops malformed meals defensively.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/healthflow/internal/models"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.0-flash"
)

// GeminiClient implements Provider against the Gemini API.
type GeminiClient struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// NewGeminiClient creates a suggestion client with default endpoints.
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{APIKey: apiKey}
}

// Suggest asks the model for three recipes built from the given
// ingredients. Meals come back with ids; missing ids are backfilled.
func (c *GeminiClient) Suggest(ctx context.Context, ingredients []string) ([]models.Meal, error) {
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}

	baseURL := strings.TrimRight(c.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	model := c.Model
	if model == "" {
		model = defaultGeminiModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 45 * time.Second}
	}

	prompt := fmt.Sprintf(`Suggest 3 healthy, creative recipes using some of these ingredients: %s.
For each recipe give an appealing name, a meal type (breakfast, lunch, dinner or snack), approximate calories and macros, and step-by-step preparation.
Respond strictly as JSON: {"meals":[{"id":"","name":"","type":"","calories":0,"macros":{"protein":0,"carbs":0,"fat":0},"ingredients":[],"preparationSteps":[]}]}`,
		strings.Join(ingredients, ", "))

	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal suggestion payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create suggestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute suggestion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read suggestion response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("suggestion request failed with status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode suggestion response: %w", err)
	}
	text := parsed.text()
	if text == "" {
		return nil, fmt.Errorf("empty suggestion response")
	}

	var out struct {
		Meals []models.Meal `json:"meals"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode suggested meals: %w", err)
	}

	return sanitizeMeals(out.Meals), nil
}

// sanitizeMeals drops unusable entries and backfills ids and types.
func sanitizeMeals(meals []models.Meal) []models.Meal {
	var clean []models.Meal
	for _, m := range meals {
		if strings.TrimSpace(m.Name) == "" {
			continue
		}
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if !models.IsValidMealType(string(m.Type)) {
			m.Type = models.MealSnack
		}
		if m.Ingredients == nil {
			m.Ingredients = []string{}
		}
		if m.PreparationSteps == nil {
			m.PreparationSteps = []string{}
		}
		clean = append(clean, m)
	}
	return clean
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r generateResponse) text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}
