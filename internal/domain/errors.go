package domain

import "errors"

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrConstraint is returned when the store rejects a write, e.g. a
	// missing category id or an empty title.
	ErrConstraint = errors.New("constraint violation")
)
