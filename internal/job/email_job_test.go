package job_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/job"
	"github.com/taskhub/taskhub-api/internal/mocks"
)

func TestWelcomeEmailJobExecute(t *testing.T) {
	t.Parallel()

	sender := &mocks.MockSender{}
	j := job.NewWelcomeEmailJob(sender, "alice@example.com", "Alice")

	assert.Equal(t, job.JobTypeWelcomeEmail, j.Type())

	require.NoError(t, j.Execute(context.Background()))
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, "alice@example.com", sender.Sent[0].To)
	assert.Equal(t, "Thanks for joining in!", sender.Sent[0].Subject)
	assert.Contains(t, sender.Sent[0].Body, "Welcome to the app, Alice")
}

func TestCancellationEmailJobExecute(t *testing.T) {
	t.Parallel()

	sender := &mocks.MockSender{}
	j := job.NewCancellationEmailJob(sender, "alice@example.com", "Alice")

	assert.Equal(t, job.JobTypeCancellationEmail, j.Type())

	require.NoError(t, j.Execute(context.Background()))
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, "Sorry to see you go", sender.Sent[0].Subject)
	assert.Contains(t, sender.Sent[0].Body, "Goodbye, Alice")
}

func TestEmailJobPayload(t *testing.T) {
	t.Parallel()

	j := job.NewWelcomeEmailJob(&mocks.MockSender{}, "alice@example.com", "Alice")

	var payload map[string]string
	require.NoError(t, json.Unmarshal(j.Payload(), &payload))
	assert.Equal(t, "alice@example.com", payload["to"])
	assert.Equal(t, "Alice", payload["name"])
}

func TestEmailNotifierDeliversExactlyOnce(t *testing.T) {
	t.Parallel()

	sender := &mocks.MockSender{}
	store := &mocks.MockJobStore{}
	runner := job.NewRunner(store, job.RunnerConfig{WorkerCount: 1, QueueSize: 4}, slog.Default())
	runner.Start()

	notifier := job.NewEmailNotifier(runner, sender, slog.Default())
	notifier.NotifyCancellation(context.Background(), "alice@example.com", "Alice")

	require.Eventually(t, func() bool {
		return sender.SentCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	runner.Stop()

	assert.Equal(t, 1, sender.SentCount())
}

func TestEmailNotifierSwallowsQueueErrors(t *testing.T) {
	t.Parallel()

	sender := &mocks.MockSender{}
	store := &mocks.MockJobStore{}
	// No workers running and a single-slot queue.
	runner := job.NewRunner(store, job.RunnerConfig{WorkerCount: 1, QueueSize: 1}, slog.Default())

	notifier := job.NewEmailNotifier(runner, sender, slog.Default())

	// Second submission hits a full queue; neither call may panic or block.
	notifier.NotifyWelcome(context.Background(), "a@example.com", "A")
	notifier.NotifyWelcome(context.Background(), "b@example.com", "B")

	assert.Zero(t, sender.SentCount())
}
