package store

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Mode selects how mutations treat unknown ids and bad input.
type Mode string

const (
	// ModePermissive accepts everything. Unknown ids are silent no-ops and
	// deletes still post their notification.
	ModePermissive Mode = "permissive"
	// ModeStrict rejects unknown ids, unknown parents and invalid input
	// without changing anything.
	ModeStrict Mode = "strict"
)

// ParseMode maps a config value to a Mode. The empty string is permissive.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModePermissive:
		return ModePermissive, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", ErrUnknownMode
	}
}

// Option configures a Store.
type Option func(*Store)

// WithMode sets the mutation mode. The default is ModePermissive.
func WithMode(mode Mode) Option {
	return func(s *Store) {
		s.mode = mode
	}
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid.NewString as the source of entity ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func defaults(s *Store) {
	s.mode = ModePermissive
	s.now = time.Now
	s.newID = uuid.NewString
	s.logger = slog.New(slog.DiscardHandler)
}
