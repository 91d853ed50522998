package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/softwarepar/softwarepar/internal/config"
)

// SendGridSender implements Sender using the SendGrid v3 API.
type SendGridSender struct {
	client        *sendgrid.Client
	senderAddress string
	senderName    string
}

// NewSendGridSender creates a new SendGridSender from email config.
func NewSendGridSender(cfg config.EmailConfig) *SendGridSender {
	return &SendGridSender{
		client:        sendgrid.NewSendClient(cfg.SendGrid.APIKey),
		senderAddress: cfg.SenderAddress,
		senderName:    cfg.SenderName,
	}
}

// Send sends an email via the SendGrid API.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(s.senderName, s.senderAddress)
	to := mail.NewEmail("", msg.To)
	m := mail.NewSingleEmail(from, msg.Subject, to, msg.TextBody, msg.HTMLBody)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to send email: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: send failed: status=%d body=%s", resp.StatusCode, resp.Body)
	}
	return nil
}
