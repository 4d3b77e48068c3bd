// Package mailer provides outbound email delivery over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskhub/taskhub-api/internal/config"
	"github.com/wneessen/go-mail"
)

// Sender delivers a single plain-text message. Implementations make no
// delivery guarantee beyond handing the message to the transport.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NoopSender implements Sender without a transport. It stands in when no
// SMTP host is configured: messages are logged and dropped, so environments
// without a mail relay still boot and serve requests.
type NoopSender struct {
	logger *slog.Logger
}

// Ensure NoopSender implements Sender interface
var _ Sender = (*NoopSender)(nil)

// NewNoopSender creates a Sender that discards every message.
func NewNoopSender(logger *slog.Logger) *NoopSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopSender{logger: logger.With(slog.String("component", "noop_mailer"))}
}

// Send implements the Sender interface by dropping the message.
func (s *NoopSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.Info("mail delivery disabled, dropping message",
		"to", to,
		"subject", subject)
	return nil
}

// SMTPSender implements Sender using an SMTP transport.
type SMTPSender struct {
	client *mail.Client
	from   string
}

// Ensure SMTPSender implements Sender interface
var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTP-backed Sender from configuration.
// Authentication is only configured when a username is present.
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.From}, nil
}

// Send implements the Sender interface.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
