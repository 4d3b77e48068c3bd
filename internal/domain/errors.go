// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")

	// ErrDisallowedField is returned when an update payload contains a field
	// outside the allow-list for the entity being updated.
	ErrDisallowedField = fmt.Errorf("%w: field not allowed", ErrValidation)
)

// IsValidationError reports whether err is any of the domain's validation
// failures, field sentinels included.
func IsValidationError(err error) bool {
	if errors.Is(err, ErrValidation) {
		return true
	}

	for _, sentinel := range []error{
		ErrEmptyUserID, ErrEmptyName, ErrUnsafeName,
		ErrEmptyEmail, ErrInvalidEmail,
		ErrPasswordTooShort, ErrPasswordTooLong, ErrUnsafePassword, ErrEmptyPassword,
		ErrTaskIDEmpty, ErrTaskOwnerEmpty, ErrTaskDescriptionEmpty,
		ErrSessionUserEmpty, ErrSessionTokenEmpty,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// ValidationError describes a validation failure on a specific field.
// It wraps a domain sentinel so callers can still use errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
