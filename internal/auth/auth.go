// ABOUTME: Auth session provider contract, session events, and error taxonomy.
// ABOUTME: Auth errors are the only storage-layer-adjacent errors surfaced to the user.
package auth

import (
	"context"
	"errors"
	"time"
)

// EventKind identifies a session-change notification.
type EventKind string

const (
	EventSignedIn       EventKind = "SIGNED_IN"
	EventSignedOut      EventKind = "SIGNED_OUT"
	EventTokenRefreshed EventKind = "TOKEN_REFRESHED"
)

// Session is the ephemeral authenticated session. It is never
// persisted inside the profile document; the client reconstructs it on
// startup from saved credentials.
type Session struct {
	UserID          string    `json:"user_id"`
	Email           string    `json:"email,omitempty"`
	DisplayNameHint string    `json:"display_name_hint,omitempty"`
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token,omitempty"`
	ExpiresAt       time.Time `json:"expires_at,omitempty"`
}

// Event is a session-change notification. Session is nil for
// EventSignedOut.
type Event struct {
	Kind    EventKind
	Session *Session
}

// Authentication failures surfaced directly to the user. Everything
// else comes back wrapped as an unknown auth error.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRateLimited        = errors.New("too many attempts, wait a minute and try again")
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

// MinPasswordLength is enforced client-side before any network call.
const MinPasswordLength = 6

// Provider is the auth capability the session reconciler consumes.
type Provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password, displayName string) (*Session, error)
	SignOut(ctx context.Context) error

	// Events delivers session-change notifications in emission order.
	Events() <-chan Event
}
