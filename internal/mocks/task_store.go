package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Custom behavior functions
	CreateFn           func(ctx context.Context, task *domain.Task) error
	GetByIDFn          func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)
	ListFn             func(ctx context.Context, ownerID uuid.UUID, opts store.TaskListOptions) ([]*domain.Task, error)
	UpdateFn           func(ctx context.Context, task *domain.Task) error
	DeleteFn           func(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteAllByOwnerFn func(ctx context.Context, ownerID uuid.UUID) error

	// Default response values
	Task  *domain.Task
	Tasks []*domain.Task
	Err   error

	// Call tracking for verification
	DeleteAllByOwnerCalls int
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements store.TaskStore
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Err
}

// GetByID implements store.TaskStore
func (m *MockTaskStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, id)
	}
	return m.Task, m.Err
}

// List implements store.TaskStore
func (m *MockTaskStore) List(ctx context.Context, ownerID uuid.UUID, opts store.TaskListOptions) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, opts)
	}
	return m.Tasks, m.Err
}

// Update implements store.TaskStore
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.Err
}

// Delete implements store.TaskStore
func (m *MockTaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}
	return m.Err
}

// DeleteAllByOwner implements store.TaskStore
func (m *MockTaskStore) DeleteAllByOwner(ctx context.Context, ownerID uuid.UUID) error {
	m.DeleteAllByOwnerCalls++
	if m.DeleteAllByOwnerFn != nil {
		return m.DeleteAllByOwnerFn(ctx, ownerID)
	}
	return m.Err
}

// WithTx implements store.TaskStore; the mock ignores transactions.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
