package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must carry a
	// HashedPassword; plaintext passwords never reach the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their normalized email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists changes to name, email and hashed password.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID. Sessions and tasks
	// owned by the user are removed by the schema's cascade rules.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateAvatar stores the avatar blob and its content type for a user.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar []byte, contentType string) error

	// ClearAvatar removes a stored avatar. Clearing an absent avatar is not
	// an error.
	ClearAvatar(ctx context.Context, id uuid.UUID) error

	// GetAvatar returns the stored avatar blob and content type for a user.
	// Returns ErrAvatarNotFound if the user does not exist or has no avatar.
	GetAvatar(ctx context.Context, id uuid.UUID) ([]byte, string, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction is created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
