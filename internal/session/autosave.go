// ABOUTME: Debounced autosave scheduler - coalesces mutations into one cloud write.
// ABOUTME: Suppressed until the initial load resolves and while signed out.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/state"
	"github.com/harperreed/healthflow/internal/store"
)

// DefaultDebounce is the quiet period after the last mutation before
// the document is persisted.
const DefaultDebounce = 3 * time.Second

const persistTimeout = 15 * time.Second

// Autosaver persists the full state document after a quiet period.
// Every mutation cancels and reschedules the timer, so only the last
// mutation of a burst results in a write.
//
// Write failures are logged as warnings and never surfaced; the next
// mutation's debounce cycle is the de facto retry.
type Autosaver struct {
	profiles store.ProfileStore
	rec      *Reconciler
	states   *state.Store
	log      *log.Logger
	delay    time.Duration

	mu          sync.Mutex
	timer       *time.Timer
	dirty       bool
	closed      bool
	unsubscribe func()
}

// Option configures an Autosaver.
type Option func(*Autosaver)

// WithDebounce overrides the debounce window (tests use a short one).
func WithDebounce(d time.Duration) Option {
	return func(a *Autosaver) { a.delay = d }
}

// NewAutosaver creates an autosaver and subscribes it to st's
// mutations. Call Close to detach.
func NewAutosaver(profiles store.ProfileStore, rec *Reconciler, st *state.Store, logger *log.Logger, opts ...Option) *Autosaver {
	a := &Autosaver{
		profiles: profiles,
		rec:      rec,
		states:   st,
		log:      logger,
		delay:    DefaultDebounce,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.unsubscribe = st.Subscribe(a.onMutation)
	return a
}

// onMutation restarts the countdown for every observed state change.
func (a *Autosaver) onMutation(models.AppState) {
	if a.suppressed() {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.dirty = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

// suppressed guards against persisting default or half-loaded state
// over a user's real document.
func (a *Autosaver) suppressed() bool {
	return !a.rec.Active() || a.rec.Status() != StatusLoaded
}

func (a *Autosaver) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := a.persist(ctx); err != nil {
		a.log.Warn("autosave failed", "err", err)
	}
}

// Flush persists any pending change immediately, cancelling the timer.
// Used on teardown and by short-lived CLI invocations that exit before
// the debounce window elapses.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	pending := a.dirty
	a.mu.Unlock()

	if !pending || a.suppressed() {
		return nil
	}
	return a.persist(ctx)
}

// Close cancels any pending write and detaches from the state store.
func (a *Autosaver) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *Autosaver) persist(ctx context.Context) error {
	sess := a.rec.Session()
	if sess == nil || a.rec.Status() != StatusLoaded {
		return nil
	}

	snapshot := a.states.Get()

	a.mu.Lock()
	a.dirty = false
	a.mu.Unlock()

	if err := a.profiles.Upsert(ctx, sess.UserID, snapshot); err != nil {
		a.mu.Lock()
		a.dirty = true
		a.mu.Unlock()
		return err
	}
	return nil
}
