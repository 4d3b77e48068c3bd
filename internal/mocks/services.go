package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MockUserService implements service.UserService for handler tests
type MockUserService struct {
	RegisterFn     func(ctx context.Context, name, email, password string) (*domain.User, string, error)
	LoginFn        func(ctx context.Context, email, password string) (*domain.User, string, error)
	AuthenticateFn func(ctx context.Context, token string) (*domain.User, error)
	LogoutFn       func(ctx context.Context, userID uuid.UUID, token string) error
	LogoutAllFn    func(ctx context.Context, userID uuid.UUID) error
	GetUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateUserFn   func(ctx context.Context, userID uuid.UUID, patch service.UserPatch) (*domain.User, error)
	DeleteUserFn   func(ctx context.Context, userID uuid.UUID) error
	UpdateAvatarFn func(ctx context.Context, userID uuid.UUID, avatar []byte, contentType string) error
	ClearAvatarFn  func(ctx context.Context, userID uuid.UUID) error
	GetAvatarFn    func(ctx context.Context, userID uuid.UUID) ([]byte, string, error)

	User              *domain.User
	Token             string
	Avatar            []byte
	AvatarContentType string
	Err               error
}

// Ensure MockUserService implements service.UserService
var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService
func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, password)
	}
	return m.User, m.Token, m.Err
}

// Login implements service.UserService
func (m *MockUserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return m.User, m.Token, m.Err
}

// Authenticate implements service.UserService
func (m *MockUserService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, token)
	}
	return m.User, m.Err
}

// Logout implements service.UserService
func (m *MockUserService) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx, userID, token)
	}
	return m.Err
}

// LogoutAll implements service.UserService
func (m *MockUserService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if m.LogoutAllFn != nil {
		return m.LogoutAllFn(ctx, userID)
	}
	return m.Err
}

// GetUser implements service.UserService
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return m.User, m.Err
}

// UpdateUser implements service.UserService
func (m *MockUserService) UpdateUser(ctx context.Context, userID uuid.UUID, patch service.UserPatch) (*domain.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, userID, patch)
	}
	return m.User, m.Err
}

// DeleteUser implements service.UserService
func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	return m.Err
}

// UpdateAvatar implements service.UserService
func (m *MockUserService) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar []byte, contentType string) error {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, userID, avatar, contentType)
	}
	return m.Err
}

// ClearAvatar implements service.UserService
func (m *MockUserService) ClearAvatar(ctx context.Context, userID uuid.UUID) error {
	if m.ClearAvatarFn != nil {
		return m.ClearAvatarFn(ctx, userID)
	}
	return m.Err
}

// GetAvatar implements service.UserService
func (m *MockUserService) GetAvatar(ctx context.Context, userID uuid.UUID) ([]byte, string, error) {
	if m.GetAvatarFn != nil {
		return m.GetAvatarFn(ctx, userID)
	}
	return m.Avatar, m.AvatarContentType, m.Err
}

// MockTaskService implements service.TaskService for handler tests
type MockTaskService struct {
	CreateTaskFn func(ctx context.Context, ownerID uuid.UUID, description string, completed bool) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)
	ListTasksFn  func(ctx context.Context, ownerID uuid.UUID, opts store.TaskListOptions) ([]*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, ownerID, id uuid.UUID, patch service.TaskPatch) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, ownerID, id uuid.UUID) error

	Task  *domain.Task
	Tasks []*domain.Task
	Err   error
}

// Ensure MockTaskService implements service.TaskService
var _ service.TaskService = (*MockTaskService)(nil)

// CreateTask implements service.TaskService
func (m *MockTaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, description string, completed bool) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, ownerID, description, completed)
	}
	return m.Task, m.Err
}

// GetTask implements service.TaskService
func (m *MockTaskService) GetTask(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, ownerID, id)
	}
	return m.Task, m.Err
}

// ListTasks implements service.TaskService
func (m *MockTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID, opts store.TaskListOptions) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, ownerID, opts)
	}
	return m.Tasks, m.Err
}

// UpdateTask implements service.TaskService
func (m *MockTaskService) UpdateTask(ctx context.Context, ownerID, id uuid.UUID, patch service.TaskPatch) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, ownerID, id, patch)
	}
	return m.Task, m.Err
}

// DeleteTask implements service.TaskService
func (m *MockTaskService) DeleteTask(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, ownerID, id)
	}
	return m.Err
}
