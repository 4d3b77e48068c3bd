package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub/taskhub-api/internal/api"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"revoked session", auth.ErrSessionRevoked, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusBadRequest},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"avatar not found", store.ErrAvatarNotFound, http.StatusNotFound},
		{"duplicate email", store.ErrEmailExists, http.StatusBadRequest},
		{"validation sentinel", domain.ErrPasswordTooShort, http.StatusBadRequest},
		{"disallowed field", domain.ErrDisallowedField, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessageNeverLeaksInternals(t *testing.T) {
	t.Parallel()

	internal := errors.New("pq: connection refused at 10.0.0.5:5432")
	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(internal))
	assert.Equal(t, "Unable to login", api.GetSafeErrorMessage(auth.ErrInvalidCredentials))
	assert.Equal(t, "Task not found", api.GetSafeErrorMessage(store.ErrTaskNotFound))
}
