package store

import "errors"

var (
	// ErrNotFound is returned when a record, or a record it references, does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique attribute value is already claimed.
	ErrConflict = errors.New("unique value already claimed")

	// ErrValidation is returned when a required attribute is missing or malformed.
	ErrValidation = errors.New("invalid record")
)
