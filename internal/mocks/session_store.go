package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MockSessionStore implements store.SessionStore for testing
type MockSessionStore struct {
	// Custom behavior functions
	CreateFn           func(ctx context.Context, session *domain.Session) error
	ExistsFn           func(ctx context.Context, userID uuid.UUID, token string) (bool, error)
	DeleteFn           func(ctx context.Context, userID uuid.UUID, token string) error
	DeleteAllForUserFn func(ctx context.Context, userID uuid.UUID) error

	// Default response values
	Active bool
	Err    error

	// Call tracking for verification
	mu                    sync.Mutex
	CreatedSessions       []*domain.Session
	DeletedTokens         []string
	DeleteAllForUserCalls int
}

// Ensure MockSessionStore implements store.SessionStore
var _ store.SessionStore = (*MockSessionStore)(nil)

// Create implements store.SessionStore
func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	m.mu.Lock()
	m.CreatedSessions = append(m.CreatedSessions, session)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}
	return m.Err
}

// Exists implements store.SessionStore
func (m *MockSessionStore) Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, userID, token)
	}
	return m.Active, m.Err
}

// Delete implements store.SessionStore
func (m *MockSessionStore) Delete(ctx context.Context, userID uuid.UUID, token string) error {
	m.mu.Lock()
	m.DeletedTokens = append(m.DeletedTokens, token)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, token)
	}
	return m.Err
}

// DeleteAllForUser implements store.SessionStore
func (m *MockSessionStore) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	m.DeleteAllForUserCalls++
	m.mu.Unlock()

	if m.DeleteAllForUserFn != nil {
		return m.DeleteAllForUserFn(ctx, userID)
	}
	return m.Err
}

// WithTx implements store.SessionStore; the mock ignores transactions.
func (m *MockSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return m
}
