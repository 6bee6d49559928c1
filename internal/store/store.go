// ABOUTME: ProfileStore interface for the per-user state document.
// ABOUTME: One JSON document per user id, always replaced whole on write.
package store

import (
	"context"
	"errors"

	"github.com/harperreed/healthflow/internal/models"
)

// ErrNotFound is returned by Get when no document exists for the user.
// The reconciler treats it as "new user", not as a failure.
var ErrNotFound = errors.New("profile not found")

// ProfileStore fetches and upserts one AppState document keyed by user
// id. Upsert is a full-document replace; there are no partial updates.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*models.AppState, error)
	Upsert(ctx context.Context, userID string, state models.AppState) error
	Close() error
}
