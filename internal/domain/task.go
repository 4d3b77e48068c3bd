package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskOwnerEmpty is returned when a task's owner ID is empty or nil.
	ErrTaskOwnerEmpty = errors.New("task owner ID cannot be empty")

	// ErrTaskDescriptionEmpty is returned when a task's description is empty
	// after trimming.
	ErrTaskDescriptionEmpty = errors.New("task description cannot be empty")
)

// Task represents a single to-do item owned by exactly one user.
// Ownership is set at creation and never transferred.
type Task struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a Task for the given owner. The description is trimmed;
// completed defaults to false unless set by the caller.
func NewTask(ownerID uuid.UUID, description string, completed bool) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Description: strings.TrimSpace(description),
		Completed:   completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Touch bumps the modification timestamp.
func (t *Task) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.OwnerID == uuid.Nil {
		return ErrTaskOwnerEmpty
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrTaskDescriptionEmpty
	}

	return nil
}
