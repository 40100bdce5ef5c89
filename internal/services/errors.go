// Package services holds the failure taxonomy shared by the workflow
// services. Callers match with errors.Is and map to transport-level
// responses in the HTTP and CLI adapters.
package services

import "errors"

var (
	// ErrNotFound is returned when an entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for malformed input: empty reason, bad
	// freelancer ID pattern, non-positive amount.
	ErrValidation = errors.New("validation error")

	// ErrConflict is returned on unique-constraint violations, e.g. a
	// freelancer ID that is already assigned.
	ErrConflict = errors.New("conflict")

	// ErrInvalidState is returned when a transition is attempted from a
	// state that does not permit it.
	ErrInvalidState = errors.New("invalid state")
)
