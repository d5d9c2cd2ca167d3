package domain

import "errors"

var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation means the input was malformed or out of range.
	ErrValidation = errors.New("validation failed")
	// ErrIntegrity means the operation would break a foreign-key
	// relationship (e.g. deleting a project that still has tasks).
	ErrIntegrity = errors.New("integrity violation")
)
