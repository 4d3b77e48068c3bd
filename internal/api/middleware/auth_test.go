package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/api/middleware"
	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/mocks"
	"github.com/taskhub/taskhub-api/internal/service/auth"
)

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Name: "Alice"}

	tests := []struct {
		name        string
		header      string
		authErr     error
		wantStatus  int
		wantNext    bool
		wantMessage string
	}{
		{
			name:       "valid token",
			header:     "Bearer good-token",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:        "missing header",
			header:      "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization header required",
		},
		{
			name:        "wrong scheme",
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authorization format",
		},
		{
			name:        "expired token",
			header:      "Bearer stale-token",
			authErr:     auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token expired",
		},
		{
			name:        "revoked session",
			header:      "Bearer revoked-token",
			authErr:     auth.ErrSessionRevoked,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
		{
			name:        "garbage token",
			header:      "Bearer garbage",
			authErr:     auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := &mocks.MockUserService{User: user, Err: tc.authErr}
			authMiddleware := middleware.NewAuthMiddleware(users)

			nextCalled := false
			var ctxUser *domain.User
			var ctxToken string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				ctxUser, _ = shared.UserFromContext(r.Context())
				ctxToken, _ = shared.TokenFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rec := httptest.NewRecorder()
			authMiddleware.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantNext, nextCalled)

			if tc.wantNext {
				require.NotNil(t, ctxUser)
				assert.Equal(t, user.ID, ctxUser.ID)
				assert.Equal(t, "good-token", ctxToken)
			}
		})
	}
}

func TestAuthMiddlewarePassesTokenToService(t *testing.T) {
	t.Parallel()

	var gotToken string
	users := &mocks.MockUserService{
		AuthenticateFn: func(ctx context.Context, token string) (*domain.User, error) {
			gotToken = token
			return &domain.User{ID: uuid.New()}, nil
		},
	}
	authMiddleware := middleware.NewAuthMiddleware(users)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer the-exact-token")

	rec := httptest.NewRecorder()
	authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	assert.Equal(t, "the-exact-token", gotToken)
}
