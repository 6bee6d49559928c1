// ABOUTME: In-memory canonical application state container.
// ABOUTME: Single updater entry point; subscribers observe every user mutation.
package state

import (
	"sync"

	"github.com/harperreed/healthflow/internal/models"
)

// Updater derives the next state from the previous one. Updaters must
// return a new value and never mutate slices of the previous state in
// place, so concurrent readers always see a consistent document.
type Updater func(models.AppState) models.AppState

// Store holds the single live AppState for the current session.
//
// Feature code mutates it only through Update, which notifies
// subscribers (the autosave scheduler). Replace is reserved for the
// session reconciler and does NOT notify - reconciliation writes must
// never schedule an autosave of their own.
type Store struct {
	mu      sync.RWMutex
	current models.AppState

	subMu sync.Mutex
	subs  map[int]func(models.AppState)
	nextSub int
}

// New creates a store holding a fresh default state.
func New() *Store {
	return &Store{
		current: models.DefaultState(),
		subs:    make(map[int]func(models.AppState)),
	}
}

// Get returns a snapshot of the current state.
func (s *Store) Get() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies fn to the current state and notifies subscribers with
// the result. This is the only entry point for feature mutations.
func (s *Store) Update(fn Updater) models.AppState {
	s.mu.Lock()
	next := fn(s.current)
	s.current = next
	s.mu.Unlock()

	s.notify(next)
	return next
}

// Replace swaps in a reconciled state without notifying subscribers.
func (s *Store) Replace(next models.AppState) {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}

// Subscribe registers a mutation listener and returns an unsubscribe
// function. Listeners are called synchronously after each Update.
func (s *Store) Subscribe(fn func(models.AppState)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(next models.AppState) {
	s.subMu.Lock()
	fns := make([]func(models.AppState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
