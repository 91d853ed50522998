package service

import (
	"context"
	"errors"

	"github.com/softwarepar/softwarepar/internal/email"
	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
)

// ErrDeliveryFailed is the only failure callers of the notification service
// see. The provider-side cause is logged, not returned: callers cannot
// distinguish transient from permanent failures and must not retry blindly.
var ErrDeliveryFailed = errors.New("email delivery failed")

// NotificationService renders and sends the transactional emails of the
// platform. Each send is a single attempt through the shared transport; there
// is no retry, queue, or backoff.
type NotificationService struct {
	sender          email.Sender
	operatorAddress string
	log             *logger.Logger
}

// NewNotificationService creates a NotificationService. operatorAddress is
// the fixed mailbox that receives contact-form notices.
func NewNotificationService(sender email.Sender, operatorAddress string, log *logger.Logger) *NotificationService {
	return &NotificationService{
		sender:          sender,
		operatorAddress: operatorAddress,
		log:             log.WithComponent("notifications"),
	}
}

// send delivers one message and maps any provider failure to ErrDeliveryFailed.
func (s *NotificationService) send(ctx context.Context, msg email.Message) error {
	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error().Err(err).
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("failed to send email")
		return ErrDeliveryFailed
	}
	s.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("email sent")
	return nil
}

// SendWelcome sends the account welcome email.
func (s *NotificationService) SendWelcome(ctx context.Context, to, name string) error {
	return s.send(ctx, email.Message{
		To:       to,
		Subject:  email.WelcomeSubject,
		HTMLBody: email.WelcomeHTML(name),
		TextBody: email.WelcomeText(name),
	})
}

// SendContactAdminNotice sends the internal notice for a contact-form
// submission. It is always addressed to the operator mailbox, regardless of
// the inquiry's content.
func (s *NotificationService) SendContactAdminNotice(ctx context.Context, inquiry *model.ContactInquiry) error {
	phone := ""
	if inquiry.Phone != nil {
		phone = *inquiry.Phone
	}
	return s.send(ctx, email.Message{
		To:       s.operatorAddress,
		Subject:  email.ContactAdminSubject(inquiry.Subject, inquiry.FullName),
		HTMLBody: email.ContactAdminHTML(inquiry.FullName, inquiry.Email, phone, inquiry.Subject, inquiry.Message),
		TextBody: email.ContactAdminText(inquiry.FullName, inquiry.Email, phone, inquiry.Subject, inquiry.Message),
	})
}

// SendContactConfirmation sends the acknowledgement email to the client who
// submitted the contact form.
func (s *NotificationService) SendContactConfirmation(ctx context.Context, clientEmail, clientName string) error {
	return s.send(ctx, email.Message{
		To:       clientEmail,
		Subject:  email.ContactConfirmationSubject,
		HTMLBody: email.ContactConfirmationHTML(clientName),
		TextBody: email.ContactConfirmationText(clientName),
	})
}

// SendPartnerCommissionNotice tells a partner a commission was generated.
// The amount string is interpolated verbatim.
func (s *NotificationService) SendPartnerCommissionNotice(ctx context.Context, partnerEmail, partnerName, amount, projectName string) error {
	return s.send(ctx, email.Message{
		To:       partnerEmail,
		Subject:  email.PartnerCommissionSubject(amount),
		HTMLBody: email.PartnerCommissionHTML(partnerName, amount, projectName),
		TextBody: email.PartnerCommissionText(partnerName, amount, projectName),
	})
}
