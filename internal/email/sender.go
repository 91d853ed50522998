package email

import (
	"context"
	"fmt"

	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/logger"
)

// Sender is the interface that all email providers must implement.
// This abstraction allows swapping email providers (Gmail, SendGrid, etc.)
// without changing business logic, and substituting a test double.
type Sender interface {
	// Send sends an email to the specified recipient.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be sent.
type Message struct {
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}

// NewSender constructs the configured provider. The transport is built once
// at startup and shared by every send for the life of the process.
func NewSender(ctx context.Context, cfg config.EmailConfig, log *logger.Logger) (Sender, error) {
	switch cfg.Provider {
	case "gmail":
		return NewGmailSender(ctx, cfg)
	case "sendgrid":
		return NewSendGridSender(cfg), nil
	case "noop":
		return NewNoopSender(log), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}

// NoopSender logs instead of sending. Used in development and tests.
type NoopSender struct {
	log *logger.Logger
}

// NewNoopSender creates a NoopSender.
func NewNoopSender(log *logger.Logger) *NoopSender {
	return &NoopSender{log: log.WithComponent("email_noop")}
}

// Send logs the message and reports success.
func (n *NoopSender) Send(ctx context.Context, msg Message) error {
	n.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("email would be sent (noop)")
	return nil
}
