package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert violates the unique email index.
	// Callers must map this to a conflict even after a prior existence check passed,
	// since two concurrent registrations can both pass the check before inserting.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicate is returned when an insert violates any other uniqueness rule,
	// such as liking the same post twice.
	ErrDuplicate = errors.New("record already exists")
)
