// Package service implements the application's use cases on top of the store
// and auth layers.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

// Notifier dispatches account-lifecycle notifications. Implementations are
// fire-and-forget: they never block the caller and never report delivery
// failures back to it.
type Notifier interface {
	NotifyWelcome(ctx context.Context, email, name string)
	NotifyCancellation(ctx context.Context, email, name string)
}

// UserPatch describes a partial user update. Nil fields are left unchanged.
// Allow-list enforcement on raw request payloads happens at the API boundary;
// by the time a patch reaches the service it only carries permitted fields.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// UserService provides account lifecycle and session operations.
type UserService interface {
	// Register creates an account, opens the first session and queues the
	// welcome notification. Returns the user and a bearer token.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)

	// Login verifies credentials and opens a new session without touching
	// existing ones. Returns auth.ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// Authenticate resolves a bearer token to its user. The token must carry
	// a valid signature AND still be present in the user's session list.
	Authenticate(ctx context.Context, token string) (*domain.User, error)

	// Logout revokes a single session token; idempotent.
	Logout(ctx context.Context, userID uuid.UUID, token string) error

	// LogoutAll revokes every session of the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateUser applies a partial update to the user's profile.
	UpdateUser(ctx context.Context, userID uuid.UUID, patch UserPatch) (*domain.User, error)

	// DeleteUser removes the account, its sessions and all owned tasks in one
	// transaction, then queues the cancellation notification.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// UpdateAvatar stores the avatar blob for the user.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar []byte, contentType string) error

	// ClearAvatar removes the user's avatar; idempotent.
	ClearAvatar(ctx context.Context, userID uuid.UUID) error

	// GetAvatar returns a user's avatar blob and content type.
	GetAvatar(ctx context.Context, userID uuid.UUID) ([]byte, string, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	runTx        store.TxRunner
	userStore    store.UserStore
	sessionStore store.SessionStore
	taskStore    store.TaskStore
	jwtService   auth.JWTService
	hasher       auth.PasswordHasher
	verifier     auth.PasswordVerifier
	notifier     Notifier
	logger       *slog.Logger
}

// Ensure UserServiceImpl implements UserService interface
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	runTx store.TxRunner,
	userStore store.UserStore,
	sessionStore store.SessionStore,
	taskStore store.TaskStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	notifier Notifier,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		runTx:        runTx,
		userStore:    userStore,
		sessionStore: sessionStore,
		taskStore:    taskStore,
		jwtService:   jwtService,
		hasher:       hasher,
		verifier:     verifier,
		notifier:     notifier,
		logger:       logger.With("component", "user_service"),
	}
}

// Register implements UserService.Register
func (s *UserServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, "", err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	session, err := domain.NewSession(user.ID, token)
	if err != nil {
		return nil, "", err
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.userStore.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.sessionStore.WithTx(tx).Create(ctx, session)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register with existing email", "email", user.Email)
		} else {
			s.logger.Error("failed to register user", "error", err, "email", user.Email)
		}
		return nil, "", err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	s.notifier.NotifyWelcome(ctx, user.Email, user.Name)

	return user, token, nil
}

// Login implements UserService.Login. The returned error is opaque: an
// unknown email and a wrong password are indistinguishable to the caller.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, "", auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	session, err := domain.NewSession(user.ID, token)
	if err != nil {
		return nil, "", err
	}

	// Appended alongside any existing sessions; concurrent logins all stay valid.
	if err := s.sessionStore.Create(ctx, session); err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return user, token, nil
}

// Authenticate implements UserService.Authenticate
func (s *UserServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwtService.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	active, err := s.sessionStore.Exists(ctx, claims.UserID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !active {
		return nil, auth.ErrSessionRevoked
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, auth.ErrSessionRevoked
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return user, nil
}

// Logout implements UserService.Logout
func (s *UserServiceImpl) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.sessionStore.Delete(ctx, userID, token); err != nil {
		s.logger.Error("failed to log out", "error", err, "user_id", userID)
		return fmt.Errorf("failed to log out: %w", err)
	}

	return nil
}

// LogoutAll implements UserService.LogoutAll
func (s *UserServiceImpl) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.sessionStore.DeleteAllForUser(ctx, userID); err != nil {
		s.logger.Error("failed to log out all sessions", "error", err, "user_id", userID)
		return fmt.Errorf("failed to log out all sessions: %w", err)
	}

	return nil
}

// GetUser implements UserService.GetUser
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// UpdateUser implements UserService.UpdateUser
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID uuid.UUID, patch UserPatch) (*domain.User, error) {
	var updated *domain.User

	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to retrieve user for update: %w", err)
		}

		if patch.Name != nil {
			user.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Email != nil {
			user.Email = domain.NormalizeEmail(*patch.Email)
		}
		if patch.Password != nil {
			if err := domain.ValidatePassword(*patch.Password); err != nil {
				return err
			}
			hashed, err := s.hasher.Hash(*patch.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user.HashedPassword = hashed
		}

		user.Touch()

		if err := user.Validate(); err != nil {
			return err
		}

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to update to an existing email", "user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("user updated", "user_id", userID)

	return updated, nil
}

// DeleteUser implements UserService.DeleteUser. Tasks, sessions and the user
// row are removed in one transaction; the cancellation notification is queued
// only after the transaction commits.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to retrieve user for deletion: %w", err)
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.taskStore.WithTx(tx).DeleteAllByOwner(ctx, userID); err != nil {
			return err
		}
		if err := s.sessionStore.WithTx(tx).DeleteAllForUser(ctx, userID); err != nil {
			return err
		}
		return s.userStore.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		return err
	}

	s.logger.Info("user deleted", "user_id", userID)

	s.notifier.NotifyCancellation(ctx, user.Email, user.Name)

	return nil
}

// UpdateAvatar implements UserService.UpdateAvatar
func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar []byte, contentType string) error {
	if err := s.userStore.UpdateAvatar(ctx, userID, avatar, contentType); err != nil {
		return fmt.Errorf("failed to store avatar: %w", err)
	}

	return nil
}

// ClearAvatar implements UserService.ClearAvatar
func (s *UserServiceImpl) ClearAvatar(ctx context.Context, userID uuid.UUID) error {
	if err := s.userStore.ClearAvatar(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear avatar: %w", err)
	}

	return nil
}

// GetAvatar implements UserService.GetAvatar
func (s *UserServiceImpl) GetAvatar(ctx context.Context, userID uuid.UUID) ([]byte, string, error) {
	return s.userStore.GetAvatar(ctx, userID)
}
