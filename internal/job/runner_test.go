package job_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/job"
	"github.com/taskhub/taskhub-api/internal/mocks"
)

// stubJob is a controllable Job for runner tests.
type stubJob struct {
	id   uuid.UUID
	err  error
	done chan struct{}
}

func newStubJob(err error) *stubJob {
	return &stubJob{id: uuid.New(), err: err, done: make(chan struct{})}
}

func (j *stubJob) ID() uuid.UUID   { return j.id }
func (j *stubJob) Type() string    { return "stub" }
func (j *stubJob) Payload() []byte { return nil }

func (j *stubJob) Execute(ctx context.Context) error {
	defer close(j.done)
	return j.err
}

func (j *stubJob) waitDone(t *testing.T) {
	t.Helper()
	select {
	case <-j.done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was never executed")
	}
}

func TestSubmitPersistsBeforeQueueing(t *testing.T) {
	t.Parallel()

	store := &mocks.MockJobStore{}
	runner := job.NewRunner(store, job.RunnerConfig{WorkerCount: 1, QueueSize: 4}, slog.Default())

	j := newStubJob(nil)
	require.NoError(t, runner.Submit(context.Background(), j))
	require.Len(t, store.SavedJobs, 1)
	assert.Equal(t, j.ID(), store.SavedJobs[0].ID())
}

func TestSubmitSaveFailure(t *testing.T) {
	t.Parallel()

	store := &mocks.MockJobStore{Err: errors.New("db down")}
	runner := job.NewRunner(store, job.RunnerConfig{WorkerCount: 1, QueueSize: 4}, slog.Default())

	err := runner.Submit(context.Background(), newStubJob(nil))
	assert.Error(t, err)
}

func TestSubmitQueueFull(t *testing.T) {
	t.Parallel()

	store := &mocks.MockJobStore{}
	// Workers never started, so the queue only drains by capacity.
	runner := job.NewRunner(store, job.RunnerConfig{WorkerCount: 1, QueueSize: 1}, slog.Default())

	require.NoError(t, runner.Submit(context.Background(), newStubJob(nil)))
	err := runner.Submit(context.Background(), newStubJob(nil))
	assert.Error(t, err)
}

func TestRunnerCompletesJob(t *testing.T) {
	t.Parallel()

	store := &mocks.MockJobStore{}
	runner := job.NewRunner(store, job.RunnerConfig{WorkerCount: 1, QueueSize: 4}, slog.Default())
	runner.Start()
	defer runner.Stop()

	j := newStubJob(nil)
	require.NoError(t, runner.Submit(context.Background(), j))
	j.waitDone(t)

	require.Eventually(t, func() bool {
		status, ok := store.LastStatus(j.ID())
		return ok && status == job.JobStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRunnerRecordsFailureWithoutRetry(t *testing.T) {
	t.Parallel()

	store := &mocks.MockJobStore{}
	runner := job.NewRunner(store, job.RunnerConfig{WorkerCount: 1, QueueSize: 4}, slog.Default())
	runner.Start()
	defer runner.Stop()

	j := newStubJob(errors.New("smtp refused"))
	require.NoError(t, runner.Submit(context.Background(), j))
	j.waitDone(t)

	require.Eventually(t, func() bool {
		status, ok := store.LastStatus(j.ID())
		return ok && status == job.JobStatusFailed
	}, 5*time.Second, 10*time.Millisecond)

	// Only saved once: a failed job is never requeued.
	assert.Len(t, store.SavedJobs, 1)
}
