package job

import (
	"context"
	"log/slog"

	"github.com/taskhub/taskhub-api/internal/platform/mailer"
)

// EmailNotifier queues account-lifecycle emails on a Runner. Submission
// errors are logged and swallowed: notification delivery is best-effort and
// must never fail the request that triggered it.
type EmailNotifier struct {
	runner *Runner
	sender mailer.Sender
	logger *slog.Logger
}

// NewEmailNotifier creates an EmailNotifier
func NewEmailNotifier(runner *Runner, sender mailer.Sender, logger *slog.Logger) *EmailNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &EmailNotifier{
		runner: runner,
		sender: sender,
		logger: logger.With(slog.String("component", "email_notifier")),
	}
}

// NotifyWelcome queues the signup notification.
func (n *EmailNotifier) NotifyWelcome(ctx context.Context, email, name string) {
	n.submit(ctx, NewWelcomeEmailJob(n.sender, email, name))
}

// NotifyCancellation queues the account-deletion farewell.
func (n *EmailNotifier) NotifyCancellation(ctx context.Context, email, name string) {
	n.submit(ctx, NewCancellationEmailJob(n.sender, email, name))
}

func (n *EmailNotifier) submit(ctx context.Context, j Job) {
	if err := n.runner.Submit(ctx, j); err != nil {
		n.logger.Error("failed to queue notification",
			"job_type", j.Type(),
			"error", err)
	}
}
