package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// TaskPatch describes a partial task update. Nil fields are left unchanged.
// Only description and completed are patchable; the API boundary rejects
// payloads carrying anything else before a patch is built.
type TaskPatch struct {
	Description *string
	Completed   *bool
}

// TaskService provides owner-scoped task operations. The owner ID always
// comes from the authenticated principal, never from client input.
type TaskService interface {
	// CreateTask creates a task owned by the given user.
	CreateTask(ctx context.Context, ownerID uuid.UUID, description string, completed bool) (*domain.Task, error)

	// GetTask retrieves one of the owner's tasks. A task that does not exist
	// and a task owned by someone else both yield store.ErrTaskNotFound.
	GetTask(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)

	// ListTasks retrieves the owner's tasks, filtered, sorted and paginated.
	ListTasks(ctx context.Context, ownerID uuid.UUID, opts store.TaskListOptions) ([]*domain.Task, error)

	// UpdateTask applies a partial update under the same fused
	// not-found/not-owned rule as GetTask.
	UpdateTask(ctx context.Context, ownerID, id uuid.UUID, patch TaskPatch) (*domain.Task, error)

	// DeleteTask removes one of the owner's tasks under the fused rule.
	DeleteTask(ctx context.Context, ownerID, id uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface
type TaskServiceImpl struct {
	runTx     store.TxRunner
	taskStore store.TaskStore
	logger    *slog.Logger
}

// Ensure TaskServiceImpl implements TaskService interface
var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a new TaskService
func NewTaskService(runTx store.TxRunner, taskStore store.TaskStore, logger *slog.Logger) *TaskServiceImpl {
	return &TaskServiceImpl{
		runTx:     runTx,
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// CreateTask implements TaskService.CreateTask
func (s *TaskServiceImpl) CreateTask(ctx context.Context, ownerID uuid.UUID, description string, completed bool) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, description, completed)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task", "error", err, "owner_id", ownerID)
		return nil, err
	}

	s.logger.Debug("task created", "task_id", task.ID, "owner_id", ownerID)

	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *TaskServiceImpl) GetTask(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, ownerID, id)
}

// ListTasks implements TaskService.ListTasks
func (s *TaskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID, opts store.TaskListOptions) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx, ownerID, opts)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "owner_id", ownerID)
		return nil, err
	}

	return tasks, nil
}

// UpdateTask implements TaskService.UpdateTask. The read and write run in one
// transaction; the record is left unmodified when validation fails.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, ownerID, id uuid.UUID, patch TaskPatch) (*domain.Task, error) {
	var updated *domain.Task

	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		task, err := txStore.GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}

		if patch.Description != nil {
			task.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.Completed != nil {
			task.Completed = *patch.Completed
		}

		task.Touch()

		if err := task.Validate(); err != nil {
			return err
		}

		if err := txStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("task updated", "task_id", id, "owner_id", ownerID)

	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.taskStore.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Debug("task deleted", "task_id", id, "owner_id", ownerID)

	return nil
}
