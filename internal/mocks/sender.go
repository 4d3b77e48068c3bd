package mocks

import (
	"context"
	"sync"

	"github.com/taskhub/taskhub-api/internal/platform/mailer"
)

// SentMessage captures one Send call for verification.
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// MockSender implements mailer.Sender for testing
type MockSender struct {
	SendFn func(ctx context.Context, to, subject, body string) error

	Err error

	mu   sync.Mutex
	Sent []SentMessage
}

// Ensure MockSender implements mailer.Sender
var _ mailer.Sender = (*MockSender)(nil)

// Send implements mailer.Sender
func (m *MockSender) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, SentMessage{To: to, Subject: subject, Body: body})
	m.mu.Unlock()

	if m.SendFn != nil {
		return m.SendFn(ctx, to, subject, body)
	}
	return m.Err
}

// SentCount returns the number of Send calls so far.
func (m *MockSender) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
