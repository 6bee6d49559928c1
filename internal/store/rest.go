// ABOUTME: REST profile store backed by a PostgREST-style profiles table.
// ABOUTME: Rows are {id, state, updated_at}; upsert merges on the id column.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harperreed/healthflow/internal/models"
)

// RestStore is the hosted cloud backend. AuthToken, when set, supplies
// the per-user bearer token so row-level security applies.
type RestStore struct {
	BaseURL    string
	APIKey     string
	AuthToken  func() string
	HTTPClient *http.Client
}

// NewRestStore creates a REST profile store for the given server.
func NewRestStore(baseURL, apiKey string, authToken func() string) *RestStore {
	return &RestStore{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		AuthToken:  authToken,
		HTTPClient: &http.Client{Timeout: 12 * time.Second},
	}
}

type profileRow struct {
	ID        string          `json:"id"`
	State     models.AppState `json:"state"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

// Get fetches the state document for userID.
func (s *RestStore) Get(ctx context.Context, userID string) (*models.AppState, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/profiles?id=eq.%s&select=id,state", s.BaseURL, url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create profile request: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read profile response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("profile fetch failed with status %d", resp.StatusCode)
	}

	var rows []profileRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	state := rows[0].State.Normalize()
	return &state, nil
}

// Upsert replaces the full state document for userID, stamping the
// server-side updated_at column.
func (s *RestStore) Upsert(ctx context.Context, userID string, state models.AppState) error {
	row := profileRow{
		ID:        userID,
		State:     state,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal([]profileRow{row})
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/rest/v1/profiles", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create upsert request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("profile upsert failed with status %d", resp.StatusCode)
	}
	return nil
}

// Close is a no-op for the REST backend.
func (s *RestStore) Close() error { return nil }

func (s *RestStore) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.APIKey)
	token := s.APIKey
	if s.AuthToken != nil {
		if t := s.AuthToken(); t != "" {
			token = t
		}
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
