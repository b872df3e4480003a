package repository

import "errors"

// Common repository-level errors
var (
	// ErrNotFound is returned by Update and Delete when no entity with the
	// requested id exists.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is reserved for uniqueness violations. No current
	// operation returns it.
	ErrDuplicate = errors.New("duplicate entity")
)
