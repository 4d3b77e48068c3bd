package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrSessionRevoked indicates a structurally valid token whose session has
	// been removed (logout, logout-all or account deletion).
	ErrSessionRevoked = errors.New("authentication token has been revoked")

	// ErrInvalidCredentials indicates a failed email/password login. It is
	// deliberately opaque: callers cannot tell an unknown email from a wrong
	// password.
	ErrInvalidCredentials = errors.New("unable to login")
)
