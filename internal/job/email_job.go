package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/platform/mailer"
)

// emailPayload is the persisted form of an email job.
type emailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// emailJob delivers a single account-lifecycle email.
type emailJob struct {
	id      uuid.UUID
	jobType string
	payload emailPayload
	sender  mailer.Sender
}

// Ensure emailJob implements Job interface
var _ Job = (*emailJob)(nil)

// NewWelcomeEmailJob creates a job that sends the signup notification.
func NewWelcomeEmailJob(sender mailer.Sender, email, name string) Job {
	return &emailJob{
		id:      uuid.New(),
		jobType: JobTypeWelcomeEmail,
		payload: emailPayload{To: email, Name: name},
		sender:  sender,
	}
}

// NewCancellationEmailJob creates a job that sends the account-deletion farewell.
func NewCancellationEmailJob(sender mailer.Sender, email, name string) Job {
	return &emailJob{
		id:      uuid.New(),
		jobType: JobTypeCancellationEmail,
		payload: emailPayload{To: email, Name: name},
		sender:  sender,
	}
}

// ID returns the job's unique identifier
func (j *emailJob) ID() uuid.UUID {
	return j.id
}

// Type returns the job type identifier
func (j *emailJob) Type() string {
	return j.jobType
}

// Payload returns the job data as a byte slice
func (j *emailJob) Payload() []byte {
	data, err := json.Marshal(j.payload)
	if err != nil {
		// emailPayload is two strings; marshaling cannot fail in practice.
		return nil
	}
	return data
}

// Execute composes the message for the job type and hands it to the sender.
func (j *emailJob) Execute(ctx context.Context) error {
	var subject, body string
	switch j.jobType {
	case JobTypeWelcomeEmail:
		subject, body = mailer.WelcomeMessage(j.payload.Name)
	case JobTypeCancellationEmail:
		subject, body = mailer.CancellationMessage(j.payload.Name)
	default:
		return fmt.Errorf("unknown email job type: %s", j.jobType)
	}

	return j.sender.Send(ctx, j.payload.To, subject, body)
}
