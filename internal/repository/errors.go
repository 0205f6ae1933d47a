package repository

import "errors"

var (
	// ErrNotFound is returned when no snapshot has been saved yet
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when a collection holds the same id twice
	ErrDuplicateID = errors.New("duplicate entity id")

	// ErrCorrupt is returned when a stored snapshot can't be decoded
	ErrCorrupt = errors.New("corrupt snapshot")
)
