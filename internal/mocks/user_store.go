package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Custom behavior functions
	CreateFn       func(ctx context.Context, user *domain.User) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn       func(ctx context.Context, user *domain.User) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	UpdateAvatarFn func(ctx context.Context, id uuid.UUID, avatar []byte, contentType string) error
	ClearAvatarFn  func(ctx context.Context, id uuid.UUID) error
	GetAvatarFn    func(ctx context.Context, id uuid.UUID) ([]byte, string, error)

	// Default response values
	User              *domain.User
	Avatar            []byte
	AvatarContentType string
	Err               error
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

// GetByID implements store.UserStore
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

// GetByEmail implements store.UserStore
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

// Update implements store.UserStore
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return m.Err
}

// Delete implements store.UserStore
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// UpdateAvatar implements store.UserStore
func (m *MockUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar []byte, contentType string) error {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, id, avatar, contentType)
	}
	return m.Err
}

// ClearAvatar implements store.UserStore
func (m *MockUserStore) ClearAvatar(ctx context.Context, id uuid.UUID) error {
	if m.ClearAvatarFn != nil {
		return m.ClearAvatarFn(ctx, id)
	}
	return m.Err
}

// GetAvatar implements store.UserStore
func (m *MockUserStore) GetAvatar(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	if m.GetAvatarFn != nil {
		return m.GetAvatarFn(ctx, id)
	}
	return m.Avatar, m.AvatarContentType, m.Err
}

// WithTx implements store.UserStore; the mock ignores transactions.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
