// ABOUTME: Charm KV profile store for cross-device E2E encrypted sync.
// ABOUTME: Wraps charm kv with profile:<uid> keys and sync-after-write.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/healthflow/internal/models"
)

const (
	charmDBName = "healthflow"
	charmHost   = "charm.2389.dev"
)

// CharmStore keeps profile documents in Charm Cloud KV. Data is E2E
// encrypted with the user's SSH key before upload.
type CharmStore struct {
	mu sync.Mutex
	kv *kv.KV
}

// OpenCharm opens the Charm KV database and pulls remote state.
func OpenCharm() (*CharmStore, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return &CharmStore{kv: db}, nil
}

// Get fetches the state document for userID.
func (s *CharmStore) Get(ctx context.Context, userID string) (*models.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get([]byte(profileKeyPrefix + userID))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}

	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	state = state.Normalize()
	return &state, nil
}

// Upsert replaces the full state document for userID and pushes it to
// Charm Cloud.
func (s *CharmStore) Upsert(ctx context.Context, userID string, state models.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.kv.Set([]byte(profileKeyPrefix+userID), data); err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	_ = s.kv.Sync()
	return nil
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}
