package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/api"
	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/mocks"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

func authedRequest(method, target string, body *bytes.Buffer, user *domain.User) *http.Request {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(shared.WithUser(req.Context(), user, "bearer-token"))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestSignup(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "valid signup",
			body:       `{"name":"Alice","email":"alice@example.com","password":"s3cret-enough"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"name":"Alice","password":"s3cret-enough"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "password too short",
			body:       `{"name":"Alice","email":"alice@example.com","password":"tiny"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Alice","email":"alice@example.com","password":"s3cret-enough"}`,
			serviceErr: store.ErrEmailExists,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "password containing password",
			body:       `{"name":"Alice","email":"alice@example.com","password":"myPassword1"}`,
			serviceErr: domain.ErrUnsafePassword,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.MockUserService{User: user, Token: "fresh-token", Err: tc.serviceErr}
			handler := api.NewUserHandler(svc, slog.Default())

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.Signup(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusCreated {
				var resp api.AuthResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, user.ID, resp.User.ID)
				assert.Equal(t, "fresh-token", resp.Token)
			}
		})
	}
}

func TestLoginFailureIsOpaque(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockUserService{Err: auth.ErrInvalidCredentials}
	handler := api.NewUserHandler(svc, slog.Default())

	body := `{"email":"alice@example.com","password":"wrong-guess"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	// Unknown email and wrong password both yield the same response.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unable to login", decodeError(t, rec))
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	svc := &mocks.MockUserService{User: user, Token: "fresh-token"}
	handler := api.NewUserHandler(svc, slog.Default())

	body := `{"email":"alice@example.com","password":"s3cret-enough"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fresh-token", resp.Token)
}

func TestLogoutRevokesPresentedToken(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New()}
	var gotToken string
	svc := &mocks.MockUserService{
		LogoutFn: func(ctx context.Context, userID uuid.UUID, token string) error {
			gotToken = token
			return nil
		},
	}
	handler := api.NewUserHandler(svc, slog.Default())

	rec := httptest.NewRecorder()
	handler.Logout(rec, authedRequest(http.MethodPost, "/users/logout", nil, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bearer-token", gotToken)
}

func TestUpdateProfileRejectsDisallowedField(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New()}
	called := false
	svc := &mocks.MockUserService{
		UpdateUserFn: func(ctx context.Context, userID uuid.UUID, patch service.UserPatch) (*domain.User, error) {
			called = true
			return nil, nil
		},
	}
	handler := api.NewUserHandler(svc, slog.Default())

	body := bytes.NewBufferString(`{"name":"Bob","age":30}`)
	rec := httptest.NewRecorder()
	handler.UpdateProfile(rec, authedRequest(http.MethodPatch, "/users/me", body, user))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// The service is never reached; the stored record stays unmodified.
	assert.False(t, called)
}

func TestUpdateProfileAppliesPatch(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Name: "Alice"}
	var gotPatch service.UserPatch
	svc := &mocks.MockUserService{
		UpdateUserFn: func(ctx context.Context, userID uuid.UUID, patch service.UserPatch) (*domain.User, error) {
			gotPatch = patch
			updated := *user
			updated.Name = *patch.Name
			return &updated, nil
		},
	}
	handler := api.NewUserHandler(svc, slog.Default())

	body := bytes.NewBufferString(`{"name":"Bob"}`)
	rec := httptest.NewRecorder()
	handler.UpdateProfile(rec, authedRequest(http.MethodPatch, "/users/me", body, user))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotPatch.Name)
	assert.Equal(t, "Bob", *gotPatch.Name)
	assert.Nil(t, gotPatch.Email)
	assert.Nil(t, gotPatch.Password)
}

func TestDeleteProfileRespondsWithUser(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	deleted := false
	svc := &mocks.MockUserService{
		DeleteUserFn: func(ctx context.Context, userID uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	handler := api.NewUserHandler(svc, slog.Default())

	rec := httptest.NewRecorder()
	handler.DeleteProfile(rec, authedRequest(http.MethodDelete, "/users/me", nil, user))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, deleted)

	var resp domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, user.Email, resp.Email)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.White)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartBody(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "avatar.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadAvatarAcceptsPNG(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New()}
	var gotContentType string
	svc := &mocks.MockUserService{
		UpdateAvatarFn: func(ctx context.Context, userID uuid.UUID, avatar []byte, contentType string) error {
			gotContentType = contentType
			return nil
		},
	}
	handler := api.NewUserHandler(svc, slog.Default())

	body, contentType := multipartBody(t, "avatar", pngBytes(t))
	req := authedRequest(http.MethodPost, "/users/me/avatar", body, user)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	handler.UploadAvatar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", gotContentType)
}

func TestUploadAvatarRejectsNonImage(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New()}
	svc := &mocks.MockUserService{}
	handler := api.NewUserHandler(svc, slog.Default())

	body, contentType := multipartBody(t, "avatar", []byte("%PDF-1.4 definitely not an image"))
	req := authedRequest(http.MethodPost, "/users/me/avatar", body, user)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	handler.UploadAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadAvatarRejectsOversize(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New()}
	svc := &mocks.MockUserService{}
	handler := api.NewUserHandler(svc, slog.Default())

	// Valid PNG header followed by enough padding to cross 1 MiB.
	data := append(pngBytes(t), make([]byte, 1<<20)...)
	body, contentType := multipartBody(t, "avatar", data)
	req := authedRequest(http.MethodPost, "/users/me/avatar", body, user)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	handler.UploadAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadAvatarMissingField(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New()}
	handler := api.NewUserHandler(&mocks.MockUserService{}, slog.Default())

	body, contentType := multipartBody(t, "file", pngBytes(t))
	req := authedRequest(http.MethodPost, "/users/me/avatar", body, user)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	handler.UploadAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvatar(t *testing.T) {
	t.Parallel()

	avatar := pngBytes(t)
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockUserService{Avatar: avatar, AvatarContentType: "image/png"}
		handler := api.NewUserHandler(svc, slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/avatar", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", userID.String())
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rec := httptest.NewRecorder()
		handler.GetAvatar(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, avatar, rec.Body.Bytes())
	})

	t.Run("missing avatar", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockUserService{Err: store.ErrAvatarNotFound}
		handler := api.NewUserHandler(svc, slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/avatar", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", userID.String())
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rec := httptest.NewRecorder()
		handler.GetAvatar(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()

		handler := api.NewUserHandler(&mocks.MockUserService{}, slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid/avatar", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "not-a-uuid")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rec := httptest.NewRecorder()
		handler.GetAvatar(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
