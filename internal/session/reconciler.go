// ABOUTME: Session reconciler - resolves local state against the cloud document.
// ABOUTME: Handles new-user bootstrap, returning-user name repair, and sign-out reset.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/harperreed/healthflow/internal/auth"
	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/state"
	"github.com/harperreed/healthflow/internal/store"
)

// Reconciler consumes session-change events and decides, per event,
// whether to reset to defaults, fetch-and-merge a returning user's
// document, or bootstrap-and-persist a new user's document.
//
// Each event bumps an epoch; a fetch that resolves after a newer event
// has arrived is discarded, so an out-of-order reconciliation pass can
// never overwrite newer state.
type Reconciler struct {
	profiles store.ProfileStore
	states   *state.Store
	log      *log.Logger

	mu      sync.Mutex
	epoch   uint64
	status  LoadStatus
	session *auth.Session
}

// NewReconciler creates a reconciler writing into st.
func NewReconciler(profiles store.ProfileStore, st *state.Store, logger *log.Logger) *Reconciler {
	return &Reconciler{
		profiles: profiles,
		states:   st,
		log:      logger,
		status:   StatusNotLoaded,
	}
}

// Status reports the load status for the current session.
func (r *Reconciler) Status() LoadStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Session returns a copy of the active session, or nil if signed out.
func (r *Reconciler) Session() *auth.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil
	}
	s := *r.session
	return &s
}

// Active reports whether a session is currently signed in.
func (r *Reconciler) Active() bool {
	return r.Session() != nil
}

// Run consumes events until the channel closes or ctx is cancelled.
// Load failures are absorbed here (fail-open); they are logged, never
// fatal.
func (r *Reconciler) Run(ctx context.Context, events <-chan auth.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			if err := r.Apply(ctx, evt); err != nil {
				r.log.Error("session load failed", "kind", evt.Kind, "err", err)
			}
		}
	}
}

// Apply processes one session-change event. The returned error is only
// non-nil for a new-user bootstrap whose initial persist failed; the
// in-memory state is applied regardless so the UI stays usable.
func (r *Reconciler) Apply(ctx context.Context, evt auth.Event) error {
	r.mu.Lock()
	r.epoch++
	pass := r.epoch

	if evt.Kind == auth.EventSignedOut || evt.Session == nil {
		r.session = nil
		r.status = StatusNotLoaded
		r.mu.Unlock()

		// Reset to a fresh value; the remote document is left untouched.
		r.states.Replace(models.DefaultState())
		return nil
	}

	sess := *evt.Session
	r.session = &sess
	r.status = StatusLoading
	r.mu.Unlock()

	doc, err := r.profiles.Get(ctx, sess.UserID)

	r.mu.Lock()
	if r.epoch != pass {
		r.mu.Unlock()
		r.log.Debug("discarding superseded reconciliation pass", "user", sess.UserID)
		return nil
	}

	switch {
	case err == nil:
		next := repairName(*doc, sess.DisplayNameHint)
		r.status = StatusLoaded
		r.mu.Unlock()
		r.states.Replace(next)
		return nil

	case errors.Is(err, store.ErrNotFound):
		// New user: apply defaults first so the UI is usable even if
		// the registration write below fails.
		next := models.DefaultState()
		next.User.Name = sess.DisplayNameHint
		r.status = StatusLoaded
		r.mu.Unlock()
		r.states.Replace(next)

		if err := r.profiles.Upsert(ctx, sess.UserID, next); err != nil {
			return fmt.Errorf("bootstrap profile for %s: %w", sess.UserID, err)
		}
		return nil

	default:
		// Transport or auth failure: keep whatever state we have and
		// carry on. No automatic retry is scheduled.
		r.status = StatusLoaded
		r.mu.Unlock()
		r.log.Error("profile fetch failed, keeping local state", "user", sess.UserID, "err", err)
		return nil
	}
}

// repairName fixes accounts created before the display name was
// captured correctly: an empty stored name, or the placeholder "user",
// is overwritten with the auth metadata hint. Any other stored name
// wins over the hint.
func repairName(doc models.AppState, hint string) models.AppState {
	name := strings.TrimSpace(doc.User.Name)
	if name == "" || strings.EqualFold(name, "user") {
		doc.User.Name = hint
	}
	return doc
}
