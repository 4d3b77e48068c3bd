package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// sortColumns maps recognized sort fields to their column names. Sort SQL is
// only ever assembled from this map, never from raw client input.
var sortColumns = map[store.TaskSortField]string{
	store.TaskSortDescription: "description",
	store.TaskSortCompleted:   "completed",
	store.TaskSortCreatedAt:   "created_at",
	store.TaskSortUpdatedAt:   "updated_at",
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (id, owner_id, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.OwnerID,
		task.Description,
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create task", "error", err, "task_id", task.ID)
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID implements store.TaskStore.GetByID. The owner is part of the lookup
// predicate, so "not found" and "not owned" are indistinguishable.
func (s *PostgresTaskStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT id, owner_id, description, completed, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND owner_id = $2
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID,
		&task.OwnerID,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		s.logger.Error("failed to get task", "error", err, "task_id", id)
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context, ownerID uuid.UUID, opts store.TaskListOptions) ([]*domain.Task, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, owner_id, description, completed, created_at, updated_at
		FROM tasks
		WHERE owner_id = $1
	`)

	args := []any{ownerID}

	if opts.Completed != nil {
		args = append(args, *opts.Completed)
		fmt.Fprintf(&sb, " AND completed = $%d", len(args))
	}

	if opts.Sort != nil {
		if column, ok := sortColumns[opts.Sort.Field]; ok {
			direction := "ASC"
			if opts.Sort.Desc {
				direction = "DESC"
			}
			fmt.Fprintf(&sb, " ORDER BY %s %s", column, direction)
		}
	}

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	if opts.Skip > 0 {
		args = append(args, opts.Skip)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			s.logger.Error("failed to scan task row", "error", err, "owner_id", ownerID)
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("error iterating task rows", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET description = $1, completed = $2, updated_at = $3
		WHERE id = $4 AND owner_id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Description,
		task.Completed,
		task.UpdatedAt,
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", task.ID)
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", id)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// DeleteAllByOwner implements store.TaskStore.DeleteAllByOwner
func (s *PostgresTaskStore) DeleteAllByOwner(ctx context.Context, ownerID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE owner_id = $1`, ownerID)
	if err != nil {
		s.logger.Error("failed to delete tasks by owner", "error", err, "owner_id", ownerID)
		return fmt.Errorf("failed to delete tasks by owner: %w", err)
	}

	return nil
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}
