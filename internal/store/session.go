package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
)

// SessionStore defines the interface for active-session persistence.
// A session row is the source of truth for token revocation: a signed token
// that has no matching row is treated as invalid.
type SessionStore interface {
	// Create records a newly issued token for a user.
	Create(ctx context.Context, session *domain.Session) error

	// Exists reports whether the token is currently active for the user.
	Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error)

	// Delete revokes a single token. Deleting an already-absent token is a
	// no-op, making logout idempotent.
	Delete(ctx context.Context, userID uuid.UUID, token string) error

	// DeleteAllForUser revokes every active token for the user.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a new SessionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SessionStore
}
