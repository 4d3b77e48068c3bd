package api

import (
	"errors"
	"net/http"

	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bearer-token authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrSessionRevoked):
		return http.StatusUnauthorized

	// Failed email/password login; always opaque to the client
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusBadRequest

	// Missing or not-owned resources; the two are indistinguishable
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Duplicate unique fields (email)
	case store.IsDuplicateError(err):
		return http.StatusBadRequest

	// Malformed or disallowed input
	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrSessionRevoked):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Unable to login"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrAvatarNotFound):
		return "Avatar not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already in use"

	// Field-level validation sentinels carry no sensitive detail; surface
	// them so clients learn what to fix.
	case domain.IsValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err, using the mapped status code
// and either the provided fallback message or the safe derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if message == "An unexpected error occurred" && fallback != "" {
		message = fallback
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
