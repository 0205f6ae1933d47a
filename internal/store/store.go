// Package store is the single state container behind the dashboard. Every
// mutation is applied copy-on-write under one lock, bumps the state version,
// and is then published to subscribers in commit order.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ganot/creativehub/internal/domain/notification"
)

// Store owns the dashboard state.
type Store struct {
	mu    sync.RWMutex
	state State

	// dispatchMu serializes writers across commit and dispatch so
	// listeners observe changes in the order they were committed.
	dispatchMu sync.Mutex

	subMu     sync.Mutex
	nextSubID int
	listeners []subscription

	mode   Mode
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

type subscription struct {
	id int
	fn Listener
}

// New creates a store holding a copy of initial.
func New(initial State, opts ...Option) *Store {
	s := &Store{state: initial.Clone()}
	defaults(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode reports the mutation mode the store was built with.
func (s *Store) Mode() Mode {
	return s.mode
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Version returns the number of mutations committed so far.
func (s *Store) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Version
}

// Subscribe registers l for every future change. The returned func removes
// it and is safe to call more than once.
func (s *Store) Subscribe(l Listener) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: l})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// txn is the working copy a mutation edits.
type txn struct {
	*State
	now   time.Time
	newID func() string
}

func (tx *txn) change(kind ChangeKind, id string) Change {
	return Change{Kind: kind, EntityID: id}
}

// notify appends a side-effect notification to the end of the feed.
func (tx *txn) notify(typ notification.Type, title, message string) {
	tx.Notifications = append(tx.Notifications, notification.Notification{
		ID:        tx.newID(),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: tx.now,
	})
}

// mutate runs fn against a copy of the state and commits the copy when fn
// returns a change. A zero Change or an error leaves the state, its version
// and the subscribers untouched.
//
// dispatchMu is held for the whole commit and dispatch, and mu only around
// the commit, so a listener may read the store and readers never wait on
// listeners.
func (s *Store) mutate(ctx context.Context, fn func(tx *txn) (Change, error)) error {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next := s.state.Clone()
	tx := &txn{State: &next, now: s.now(), newID: s.newID}

	change, err := fn(tx)
	if err != nil || change.Kind == "" {
		s.mu.Unlock()
		return err
	}

	next.Version = s.state.Version + 1
	change.Version = next.Version
	change.At = tx.now
	s.state = next
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "state changed",
		"kind", change.Kind,
		"id", change.EntityID,
		"version", change.Version)

	s.subMu.Lock()
	listeners := append([]subscription(nil), s.listeners...)
	s.subMu.Unlock()

	for _, sub := range listeners {
		sub.fn(ctx, change, next)
	}
	return nil
}

// missing returns err in strict mode and nil otherwise, so a permissive
// mutation on an unknown id turns into a no-op.
func (s *Store) missing(err error) error {
	if s.mode == ModeStrict {
		return err
	}
	return nil
}

func (s *Store) strict() bool {
	return s.mode == ModeStrict
}

// read runs fn under the read lock.
func (s *Store) read(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}
