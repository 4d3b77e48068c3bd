package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/job"
)

// StatusUpdate captures one UpdateJobStatus call for verification.
type StatusUpdate struct {
	JobID    uuid.UUID
	Status   job.JobStatus
	ErrorMsg string
}

// MockJobStore implements job.JobStore for testing
type MockJobStore struct {
	SaveJobFn         func(ctx context.Context, j job.Job) error
	UpdateJobStatusFn func(ctx context.Context, jobID uuid.UUID, status job.JobStatus, errorMsg string) error

	Err error

	mu            sync.Mutex
	SavedJobs     []job.Job
	StatusUpdates []StatusUpdate
}

// Ensure MockJobStore implements job.JobStore
var _ job.JobStore = (*MockJobStore)(nil)

// SaveJob implements job.JobStore
func (m *MockJobStore) SaveJob(ctx context.Context, j job.Job) error {
	m.mu.Lock()
	m.SavedJobs = append(m.SavedJobs, j)
	m.mu.Unlock()

	if m.SaveJobFn != nil {
		return m.SaveJobFn(ctx, j)
	}
	return m.Err
}

// UpdateJobStatus implements job.JobStore
func (m *MockJobStore) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status job.JobStatus, errorMsg string) error {
	m.mu.Lock()
	m.StatusUpdates = append(m.StatusUpdates, StatusUpdate{JobID: jobID, Status: status, ErrorMsg: errorMsg})
	m.mu.Unlock()

	if m.UpdateJobStatusFn != nil {
		return m.UpdateJobStatusFn(ctx, jobID, status, errorMsg)
	}
	return m.Err
}

// LastStatus returns the most recent status recorded for jobID, if any.
func (m *MockJobStore) LastStatus(jobID uuid.UUID) (job.JobStatus, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.StatusUpdates) - 1; i >= 0; i-- {
		if m.StatusUpdates[i].JobID == jobID {
			return m.StatusUpdates[i].Status, true
		}
	}
	return "", false
}

// WithTx implements job.JobStore; the mock ignores transactions.
func (m *MockJobStore) WithTx(tx *sql.Tx) job.JobStore {
	return m
}
