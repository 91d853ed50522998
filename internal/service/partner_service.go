package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
	"github.com/softwarepar/softwarepar/internal/repository"
)

// Partner errors
var (
	ErrPartnerNotFound = errors.New("partner not found")
)

// PartnerStore persists partners and their commissions.
type PartnerStore interface {
	Create(ctx context.Context, partner *model.Partner) error
	GetByID(ctx context.Context, id string) (*model.Partner, error)
	GetByUserID(ctx context.Context, userID string) (*model.Partner, error)
	CreateCommission(ctx context.Context, c *model.Commission) error
	ListCommissions(ctx context.Context, partnerID string) ([]*model.Commission, error)
}

// PartnerUserStore resolves the user account behind a partner.
type PartnerUserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// PartnerService manages referral partners and commission records.
type PartnerService struct {
	partners      PartnerStore
	users         PartnerUserStore
	notifications *NotificationService
	log           *logger.Logger
}

// NewPartnerService creates a PartnerService.
func NewPartnerService(partners PartnerStore, users PartnerUserStore, notifications *NotificationService, log *logger.Logger) *PartnerService {
	return &PartnerService{
		partners:      partners,
		users:         users,
		notifications: notifications,
		log:           log.WithComponent("partners"),
	}
}

// EnrollPartner creates the partner record for a newly registered partner
// account and assigns its referral code.
func (s *PartnerService) EnrollPartner(ctx context.Context, userID string) (*model.Partner, error) {
	code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	partner := &model.Partner{
		ID:             uuid.New().String(),
		UserID:         userID,
		ReferralCode:   code,
		CommissionRate: "25.00",
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.partners.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to enroll partner: %w", err)
	}
	return partner, nil
}

// RecordCommission stores a commission for a partner and sends the partner
// the commission notice. The notice is best effort: a delivery failure is
// logged and the commission stays recorded.
func (s *PartnerService) RecordCommission(ctx context.Context, partnerID, projectName, amount string) (*model.Commission, error) {
	partner, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to load partner: %w", err)
	}

	user, err := s.users.GetByID(ctx, partner.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load partner user: %w", err)
	}

	commission := &model.Commission{
		ID:          uuid.New().String(),
		PartnerID:   partner.ID,
		ProjectName: projectName,
		Amount:      amount,
		Status:      model.CommissionProcessed,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.partners.CreateCommission(ctx, commission); err != nil {
		return nil, fmt.Errorf("failed to record commission: %w", err)
	}

	if err := s.notifications.SendPartnerCommissionNotice(ctx, user.Email, user.FullName, amount, projectName); err != nil {
		s.log.Warn().Err(err).Str("commission_id", commission.ID).Msg("commission notice not delivered")
	}

	return commission, nil
}

// ListCommissionsForUser returns the commissions of the partner linked to a
// user account.
func (s *PartnerService) ListCommissionsForUser(ctx context.Context, userID string) ([]*model.Commission, error) {
	partner, err := s.partners.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to load partner: %w", err)
	}
	return s.partners.ListCommissions(ctx, partner.ID)
}
