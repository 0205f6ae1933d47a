package store

import "errors"

var (
	// ErrNoActiveUser indicates a user-scoped change with no signed-in user.
	ErrNoActiveUser = errors.New("no active user")
	// ErrUnknownMode indicates an unrecognized store mode name.
	ErrUnknownMode = errors.New("unknown store mode")
)
