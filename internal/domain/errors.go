// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation.
	// This is usually wrapped in a *ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrMissingField is returned when a required input is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidDateTime is returned when a date-time is not ISO 8601.
	ErrInvalidDateTime = errors.New("invalid date-time")

	// ErrUnauthorized is returned when the caller's role is too low.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes the first field of an input that failed parsing
// or validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. The cause is
// wrapped so callers can still match on it with errors.Is.
func NewValidationError(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     cause,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap exposes both the specific cause and ErrValidation.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{e.Err, ErrValidation}
}
