package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// Create implements store.SessionStore.Create
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO sessions (id, user_id, token, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Token,
		session.CreatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create session", "error", err, "user_id", session.UserID)
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Exists implements store.SessionStore.Exists
func (s *PostgresSessionStore) Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sessions WHERE user_id = $1 AND token = $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, token).Scan(&exists); err != nil {
		s.logger.Error("failed to check session", "error", err, "user_id", userID)
		return false, fmt.Errorf("failed to check session: %w", err)
	}

	return exists, nil
}

// Delete implements store.SessionStore.Delete. Deleting an absent token is a
// no-op so logout stays idempotent.
func (s *PostgresSessionStore) Delete(ctx context.Context, userID uuid.UUID, token string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE user_id = $1 AND token = $2`, userID, token)
	if err != nil {
		s.logger.Error("failed to delete session", "error", err, "user_id", userID)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteAllForUser implements store.SessionStore.DeleteAllForUser
func (s *PostgresSessionStore) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		s.logger.Error("failed to delete sessions for user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to delete sessions for user: %w", err)
	}

	return nil
}

// WithTx implements store.SessionStore.WithTx
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{db: tx, logger: s.logger}
}
