// ABOUTME: Local profile store on Badger KV for offline use.
// ABOUTME: Keys are profile:<uid>, values the full JSON state document.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/healthflow/internal/models"
)

const profileKeyPrefix = "profile:"

// LocalStore keeps profile documents in an on-disk Badger database.
type LocalStore struct {
	db *badger.DB
}

// OpenLocal opens (or creates) a Badger-backed store at dir.
func OpenLocal(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Dir(dir), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	return &LocalStore{db: db}, nil
}

// Get fetches the state document for userID.
func (s *LocalStore) Get(ctx context.Context, userID string) (*models.AppState, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profileKeyPrefix + userID))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	state = state.Normalize()
	return &state, nil
}

// Upsert replaces the full state document for userID.
func (s *LocalStore) Upsert(ctx context.Context, userID string, state models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKeyPrefix+userID), data)
	})
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *LocalStore) Close() error {
	return s.db.Close()
}
