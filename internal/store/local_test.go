// ABOUTME: Tests for the Badger-backed local profile store.
// ABOUTME: Round-trips the full document and checks not-found handling.
package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/healthflow/internal/models"
)

func openTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := OpenLocal(filepath.Join(t.TempDir(), "profiles"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLocalStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := models.DefaultState()
	doc.User.Name = "Ana"
	doc.User.DietaryPreferences = []string{"vegetarian", "no nuts"}
	doc.Hydration = []models.HydrationLog{
		{Date: time.Now().UTC().Format(time.RFC3339), Amount: 250},
	}
	doc.Streak = 3
	doc.Badges[0].Achieved = true

	require.NoError(t, s.Upsert(ctx, "u1", doc))

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, doc, *got)
}

func TestLocalStoreGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreUpsertReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := models.DefaultState()
	first.Streak = 1
	require.NoError(t, s.Upsert(ctx, "u1", first))

	second := models.DefaultState()
	second.Streak = 2
	second.LastVisit = first.LastVisit
	require.NoError(t, s.Upsert(ctx, "u1", second))

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Streak, "upsert is a full-document replace")
}

func TestLocalStoreIsolatesUsers(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	docA := models.DefaultState()
	docA.User.Name = "Ana"
	docB := models.DefaultState()
	docB.User.Name = "Bruno"
	docB.LastVisit = docA.LastVisit

	require.NoError(t, s.Upsert(ctx, "a", docA))
	require.NoError(t, s.Upsert(ctx, "b", docB))

	gotA, err := s.Get(ctx, "a")
	require.NoError(t, err)
	gotB, err := s.Get(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, "Ana", gotA.User.Name)
	assert.Equal(t, "Bruno", gotB.User.Name)
}
