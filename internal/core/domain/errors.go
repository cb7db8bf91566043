package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source or storage backend.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrTransport indicates the remote listing source could not be reached
	// or answered with a non-success status. It is never retried.
	ErrTransport = errors.New("transport error")

	// ErrMalformedRecord indicates a raw record has an unexpected shape.
	// Batch normalisation skips such records.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrTypeMismatch indicates a Listing was compared with another type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrSourceClosed indicates the listing source has been closed.
	ErrSourceClosed = errors.New("source closed")
)
