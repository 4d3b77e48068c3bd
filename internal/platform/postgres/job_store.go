package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/job"
	"github.com/taskhub/taskhub-api/internal/store"
)

// PostgresJobStore implements the job.JobStore interface using PostgreSQL.
type PostgresJobStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresJobStore creates a new PostgresJobStore
func NewPostgresJobStore(db store.DBTX, logger *slog.Logger) *PostgresJobStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresJobStore{
		db:     db,
		logger: logger.With(slog.String("component", "job_store")),
	}
}

// Ensure PostgresJobStore implements job.JobStore interface
var _ job.JobStore = (*PostgresJobStore)(nil)

// SaveJob persists a job record with pending status.
func (s *PostgresJobStore) SaveJob(ctx context.Context, j job.Job) error {
	query := `
		INSERT INTO jobs (id, type, payload, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, query,
		j.ID(),
		j.Type(),
		j.Payload(),
		job.JobStatusPending,
		now,
		now,
	)
	if err != nil {
		s.logger.Error("failed to save job",
			"job_id", j.ID(),
			"job_type", j.Type(),
			"error", err)
		return fmt.Errorf("failed to save job to database: %w", err)
	}

	return nil
}

// UpdateJobStatus updates the status of a job record.
func (s *PostgresJobStore) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status job.JobStatus, errorMsg string) error {
	query := `
		UPDATE jobs
		SET status = $1, error_message = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		status,
		errorMsg,
		time.Now().UTC(),
		jobID,
	)
	if err != nil {
		s.logger.Error("failed to update job status",
			"job_id", jobID,
			"status", status,
			"error", err)
		return fmt.Errorf("failed to update job status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		s.logger.Warn("no job found with ID to update status", "job_id", jobID)
		return nil // Job record missing, treat as no-op
	}

	return nil
}

// WithTx implements job.JobStore.WithTx
func (s *PostgresJobStore) WithTx(tx *sql.Tx) job.JobStore {
	return &PostgresJobStore{db: tx, logger: s.logger}
}
