package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/store"
)

const (
	// maxAvatarBytes caps avatar uploads at 1 MiB.
	maxAvatarBytes = 1 << 20

	avatarFormField = "avatar"
)

// UserHandler handles account, session and avatar endpoints.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.With("component", "user_handler"),
	}
}

// Signup handles POST /users.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, token, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{User: user, Token: token})
}

// Login handles POST /users/login. Credential failures respond 400 with an
// opaque message; the status never reveals whether the email exists.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unable to login")
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Unable to login")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{User: user, Token: token})
}

// Logout handles POST /users/logout, revoking only the presented token.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	token, _ := shared.TokenFromContext(r.Context())

	if err := h.userService.Logout(r.Context(), user.ID, token); err != nil {
		HandleAPIError(w, r, err, "Failed to log out")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// LogoutAll handles POST /users/logoutAll, revoking every session of the user.
func (h *UserHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.userService.LogoutAll(r.Context(), user.ID); err != nil {
		HandleAPIError(w, r, err, "Failed to log out")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// GetProfile handles GET /users/me.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me. Only name, email and password may be
// patched; any other key fails the whole request.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	fields, err := decodePatch(r, "name", "email", "password")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid updates")
		return
	}

	var patch service.UserPatch
	if patch.Name, err = patchString(fields, "name"); err != nil {
		HandleAPIError(w, r, err, "Invalid updates")
		return
	}
	if patch.Email, err = patchString(fields, "email"); err != nil {
		HandleAPIError(w, r, err, "Invalid updates")
		return
	}
	if patch.Password, err = patchString(fields, "password"); err != nil {
		HandleAPIError(w, r, err, "Invalid updates")
		return
	}

	updated, err := h.userService.UpdateUser(r.Context(), user.ID, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// DeleteProfile handles DELETE /users/me. Responds with the deleted profile.
func (h *UserHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), user.ID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UploadAvatar handles POST /users/me/avatar. Accepts a multipart form with an
// "avatar" file of at most 1 MiB; only JPEG and PNG content is stored. The
// image type is sniffed from the bytes, not taken from the client's headers.
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	// Some slack on top of the file cap for the multipart framing itself.
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes+(64<<10))

	file, _, err := r.FormFile(avatarFormField)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please upload an avatar file")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("failed to close uploaded file", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}
	if len(data) > maxAvatarBytes {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Avatar must be 1MB or smaller")
		return
	}

	contentType := http.DetectContentType(data)
	if contentType != "image/jpeg" && contentType != "image/png" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please upload a jpg, jpeg or png image")
		return
	}

	if err := h.userService.UpdateAvatar(r.Context(), user.ID, data, contentType); err != nil {
		HandleAPIError(w, r, err, "Failed to store avatar")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// DeleteAvatar handles DELETE /users/me/avatar; idempotent.
func (h *UserHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.userService.ClearAvatar(r.Context(), user.ID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete avatar")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// GetAvatar handles GET /users/{id}/avatar. The route is public; a malformed
// ID, an unknown user and a user without an avatar all respond 404.
func (h *UserHandler) GetAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Avatar not found")
		return
	}

	avatar, contentType, err := h.userService.GetAvatar(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Avatar not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to retrieve avatar", err)
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(avatar); err != nil {
		h.logger.Warn("failed to write avatar response", "error", err)
	}
}
