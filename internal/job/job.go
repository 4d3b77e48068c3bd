// Package job provides background processing for work that must not block
// the request path, currently outbound email notifications. Delivery is
// best-effort and at-most-once: a failed job is recorded but never retried.
package job

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// JobStatus represents the current state of a job
type JobStatus string

// Possible job status values
const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Job type constants
const (
	// JobTypeWelcomeEmail is the signup notification email.
	JobTypeWelcomeEmail = "welcome_email"

	// JobTypeCancellationEmail is the farewell email sent on account deletion.
	JobTypeCancellationEmail = "cancellation_email"
)

// Job represents a unit of background work to be processed.
type Job interface {
	// ID returns the job's unique identifier
	ID() uuid.UUID

	// Type returns the job type identifier
	Type() string

	// Payload returns the job data as a byte slice
	Payload() []byte

	// Execute runs the job logic
	Execute(ctx context.Context) error
}

// JobStore defines the interface for persisting job records. The rows exist
// for observability; nothing ever reads them back to re-run work.
type JobStore interface {
	// SaveJob persists a new job record with pending status.
	SaveJob(ctx context.Context, job Job) error

	// UpdateJobStatus updates the status of a job, recording the error
	// message for failed jobs.
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status JobStatus, errorMsg string) error

	// WithTx returns a new JobStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) JobStore
}
