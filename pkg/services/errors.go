// Package services holds the domain services: generation orchestration and
// prompt log persistence.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrUnauthenticated is returned when a persisting operation is
	// attempted without a user identity.
	ErrUnauthenticated = errors.New("user identity is required")
)

// ValidationError wraps field-specific validation errors. Rejected before
// any external call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ConfigurationError signals a missing required external credential. Fatal
// for the request, surfaced verbatim to the caller, never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// upstreamFailureMessage is the only text shown to users when the
// text-generation service fails. Raw upstream responses are never exposed.
const upstreamFailureMessage = "visualization generation failed"
