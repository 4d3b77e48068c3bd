package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO users (id, name, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrEmailExists
		}
		s.logger.Error("failed to create user", "error", err, "user_id", user.ID)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, name, email, hashed_password, avatar_content_type, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return s.scanUser(ctx, query, id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, hashed_password, avatar_content_type, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return s.scanUser(ctx, query, domain.NormalizeEmail(email))
}

// scanUser runs a single-row user query. The avatar blob itself is never
// loaded here; it is fetched only through GetAvatar.
func (s *PostgresUserStore) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	var avatarContentType sql.NullString

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&avatarContentType,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to get user", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.AvatarContentType = avatarContentType.String
	return &user, nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE users
		SET name = $1, email = $2, hashed_password = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.HashedPassword,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrEmailExists
		}
		s.logger.Error("failed to update user", "error", err, "user_id", user.ID)
		return fmt.Errorf("failed to update user: %w", err)
	}

	return s.requireRow(result, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return s.requireRow(result, store.ErrUserNotFound)
}

// UpdateAvatar implements store.UserStore.UpdateAvatar
func (s *PostgresUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar []byte, contentType string) error {
	query := `
		UPDATE users
		SET avatar = $1, avatar_content_type = $2, updated_at = now()
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, avatar, contentType, id)
	if err != nil {
		s.logger.Error("failed to update avatar", "error", err, "user_id", id)
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	return s.requireRow(result, store.ErrUserNotFound)
}

// ClearAvatar implements store.UserStore.ClearAvatar
func (s *PostgresUserStore) ClearAvatar(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET avatar = NULL, avatar_content_type = NULL, updated_at = now()
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		s.logger.Error("failed to clear avatar", "error", err, "user_id", id)
		return fmt.Errorf("failed to clear avatar: %w", err)
	}

	return s.requireRow(result, store.ErrUserNotFound)
}

// GetAvatar implements store.UserStore.GetAvatar
func (s *PostgresUserStore) GetAvatar(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	query := `
		SELECT avatar, avatar_content_type
		FROM users
		WHERE id = $1
	`

	var avatar []byte
	var contentType sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(&avatar, &contentType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", store.ErrAvatarNotFound
		}
		s.logger.Error("failed to get avatar", "error", err, "user_id", id)
		return nil, "", fmt.Errorf("failed to get avatar: %w", err)
	}

	if len(avatar) == 0 {
		return nil, "", store.ErrAvatarNotFound
	}

	return avatar, contentType.String, nil
}

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, logger: s.logger}
}

// requireRow converts a zero-rows-affected result into notFound.
func (s *PostgresUserStore) requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
