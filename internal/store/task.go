package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
)

// TaskSortField enumerates the columns tasks may be sorted by.
type TaskSortField string

// Recognized sort fields. The string values match the query-parameter form.
const (
	TaskSortDescription TaskSortField = "description"
	TaskSortCompleted   TaskSortField = "completed"
	TaskSortCreatedAt   TaskSortField = "createdAt"
	TaskSortUpdatedAt   TaskSortField = "updatedAt"
)

// TaskSort describes a single sort key and direction.
type TaskSort struct {
	Field TaskSortField
	Desc  bool
}

// ParseTaskSort parses a "field:direction" pair (e.g. "createdAt:desc").
// Unrecognized fields and directions are ignored rather than rejected, so a
// nil result means "no sort". Direction defaults to ascending.
func ParseTaskSort(s string) *TaskSort {
	if s == "" {
		return nil
	}

	field, dir, _ := strings.Cut(s, ":")
	switch TaskSortField(field) {
	case TaskSortDescription, TaskSortCompleted, TaskSortCreatedAt, TaskSortUpdatedAt:
		return &TaskSort{Field: TaskSortField(field), Desc: dir == "desc"}
	default:
		return nil
	}
}

// TaskListOptions narrows and orders a task listing. The zero value lists
// every task of the owner in storage order with no limit.
type TaskListOptions struct {
	// Completed filters by completion state when non-nil.
	Completed *bool

	// Sort orders the result when non-nil.
	Sort *TaskSort

	// Limit caps the number of returned rows when > 0.
	Limit int

	// Skip offsets into the result set when > 0.
	Skip int
}

// TaskStore defines the interface for task data persistence. Every read and
// write except Create is owner-scoped: the ownerID is part of the lookup
// predicate, so a task belonging to another user behaves exactly like a task
// that does not exist.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID, scoped to the owner.
	// Returns ErrTaskNotFound if the task does not exist or is owned by a
	// different user.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)

	// List retrieves the owner's tasks, filtered, sorted and paginated per opts.
	List(ctx context.Context, ownerID uuid.UUID, opts TaskListOptions) ([]*domain.Task, error)

	// Update persists the task's description and completed flag, scoped to
	// task.OwnerID. Returns ErrTaskNotFound under the same fused rule as GetByID.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID, scoped to the owner.
	// Returns ErrTaskNotFound under the same fused rule as GetByID.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// DeleteAllByOwner removes every task owned by the given user. Invoked as
	// part of account deletion; deleting zero tasks is not an error.
	DeleteAllByOwner(ctx context.Context, ownerID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
