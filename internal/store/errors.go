package store

import "errors"

var (
	// ErrNotFound is returned when a record id is absent from its collection.
	ErrNotFound = errors.New("record not found")

	// ErrMalformedStorage is returned when the persisted document exists but
	// cannot be parsed. This is fatal at startup.
	ErrMalformedStorage = errors.New("malformed storage document")
)
