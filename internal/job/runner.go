package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// RunnerConfig holds configuration for the job runner
type RunnerConfig struct {
	// WorkerCount determines how many concurrent workers process jobs
	WorkerCount int

	// QueueSize determines the buffer size for the in-memory job queue
	QueueSize int
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount: 2,
		QueueSize:   100,
	}
}

// Runner manages background job processing. Jobs are queued to a buffered
// channel and picked up by worker goroutines; the submitting request never
// waits for execution.
type Runner struct {
	store      JobStore
	jobChan    chan Job
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	config     RunnerConfig
	logger     *slog.Logger
}

// NewRunner creates a new Runner
func NewRunner(store JobStore, config RunnerConfig, logger *slog.Logger) *Runner {
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultRunnerConfig().WorkerCount
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultRunnerConfig().QueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		store:      store,
		jobChan:    make(chan Job, config.QueueSize),
		ctx:        ctx,
		cancelFunc: cancel,
		config:     config,
		logger:     logger.With(slog.String("component", "job_runner")),
	}
}

// Submit records the job and adds it to the queue. Returns an error when the
// record cannot be saved or the queue is full; callers treat both as a lost
// notification, not a request failure.
func (r *Runner) Submit(ctx context.Context, job Job) error {
	if err := r.store.SaveJob(ctx, job); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	select {
	case r.jobChan <- job:
		return nil
	default:
		return fmt.Errorf("job queue is full")
	}
}

// Start launches the worker goroutines.
func (r *Runner) Start() {
	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
}

// Stop gracefully shuts down the runner. Queued jobs that have not started
// are abandoned; their rows stay pending.
func (r *Runner) Stop() {
	r.cancelFunc()
	r.wg.Wait()
	close(r.jobChan)
}

// worker processes jobs from the queue
func (r *Runner) worker(id int) {
	defer r.wg.Done()

	r.logger.Debug("starting worker", "worker_id", id)

	for {
		select {
		case <-r.ctx.Done():
			r.logger.Debug("stopping worker", "worker_id", id)
			return

		case job, ok := <-r.jobChan:
			if !ok {
				r.logger.Debug("job channel closed, stopping worker", "worker_id", id)
				return
			}
			r.processJob(job, id)
		}
	}
}

// processJob handles execution of a single job. Failures are recorded and
// logged but never requeued.
func (r *Runner) processJob(job Job, workerID int) {
	ctx := context.Background()
	logger := r.logger.With(
		"job_id", job.ID(),
		"job_type", job.Type(),
		"worker_id", workerID,
	)

	if err := r.store.UpdateJobStatus(ctx, job.ID(), JobStatusProcessing, ""); err != nil {
		logger.Error("failed to update job status to processing", "error", err)
		return
	}

	logger.Info("processing job")

	if err := job.Execute(ctx); err != nil {
		logger.Error("job execution failed", "error", err)
		if updateErr := r.store.UpdateJobStatus(ctx, job.ID(), JobStatusFailed, err.Error()); updateErr != nil {
			logger.Error("failed to update job status to failed", "error", updateErr)
		}
		return
	}

	logger.Info("job completed successfully")
	if updateErr := r.store.UpdateJobStatus(ctx, job.ID(), JobStatusCompleted, ""); updateErr != nil {
		logger.Error("failed to update job status to completed", "error", updateErr)
	}
}
