package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
)

// ContactStore persists contact inquiries.
type ContactStore interface {
	Create(ctx context.Context, inquiry *model.ContactInquiry) error
	ListRecent(ctx context.Context, limit int) ([]*model.ContactInquiry, error)
}

// ContactService handles contact-form submissions: it records the inquiry and
// dispatches the operator notice plus the client acknowledgement.
type ContactService struct {
	store         ContactStore
	notifications *NotificationService
	log           *logger.Logger
}

// NewContactService creates a ContactService.
func NewContactService(store ContactStore, notifications *NotificationService, log *logger.Logger) *ContactService {
	return &ContactService{
		store:         store,
		notifications: notifications,
		log:           log.WithComponent("contact"),
	}
}

// SubmitInquiryInput holds a contact-form submission.
type SubmitInquiryInput struct {
	FullName string
	Email    string
	Phone    *string
	Subject  string
	Message  string
}

// SubmitInquiry records the inquiry and sends both notification emails.
// Persistence failure fails the submission; email failures do not — they are
// logged and the client still gets a successful response, so a mail-provider
// outage never blocks the contact form.
func (s *ContactService) SubmitInquiry(ctx context.Context, input SubmitInquiryInput) (*model.ContactInquiry, error) {
	inquiry := &model.ContactInquiry{
		ID:        uuid.New().String(),
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to record inquiry: %w", err)
	}

	if err := s.notifications.SendContactAdminNotice(ctx, inquiry); err != nil {
		s.log.Warn().Err(err).Str("inquiry_id", inquiry.ID).Msg("admin notice not delivered")
	}
	if err := s.notifications.SendContactConfirmation(ctx, inquiry.Email, inquiry.FullName); err != nil {
		s.log.Warn().Err(err).Str("inquiry_id", inquiry.ID).Msg("client confirmation not delivered")
	}

	return inquiry, nil
}

// RecentInquiries returns the latest inquiries for the admin dashboard.
func (s *ContactService) RecentInquiries(ctx context.Context, limit int) ([]*model.ContactInquiry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.store.ListRecent(ctx, limit)
}
