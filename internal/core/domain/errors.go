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

	// ErrIndexUnavailable indicates no dictionary index is configured.
	// Lookups cannot run without one.
	ErrIndexUnavailable = errors.New("dictionary index unavailable")

	// ErrMalformedTermBank indicates a dictionary archive could not be parsed.
	ErrMalformedTermBank = errors.New("malformed term bank")

	// ErrUnsupportedType indicates an unknown processor or storage backend.
	ErrUnsupportedType = errors.New("unsupported type")
)
