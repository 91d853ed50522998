package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/softwarepar/softwarepar/internal/database"
	"github.com/softwarepar/softwarepar/internal/model"
)

// PartnerRepository handles partner and commission persistence
type PartnerRepository struct {
	db *database.Postgres
}

// NewPartnerRepository creates a new PartnerRepository
func NewPartnerRepository(db *database.Postgres) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// Create inserts a new partner
func (r *PartnerRepository) Create(ctx context.Context, partner *model.Partner) error {
	query := `
		INSERT INTO partners (id, user_id, referral_code, commission_rate, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		partner.ID,
		partner.UserID,
		partner.ReferralCode,
		partner.CommissionRate,
		partner.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

// GetByID retrieves a partner by ID
func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*model.Partner, error) {
	query := `
		SELECT id, user_id, referral_code, commission_rate, created_at
		FROM partners
		WHERE id = $1
	`
	return r.scanPartner(r.db.QueryRowContext(ctx, query, id))
}

// GetByUserID retrieves the partner linked to a user account
func (r *PartnerRepository) GetByUserID(ctx context.Context, userID string) (*model.Partner, error) {
	query := `
		SELECT id, user_id, referral_code, commission_rate, created_at
		FROM partners
		WHERE user_id = $1
	`
	return r.scanPartner(r.db.QueryRowContext(ctx, query, userID))
}

// CreateCommission records a commission for a partner
func (r *PartnerRepository) CreateCommission(ctx context.Context, c *model.Commission) error {
	query := `
		INSERT INTO commissions (id, partner_id, project_name, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.PartnerID,
		c.ProjectName,
		c.Amount,
		c.Status,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create commission: %w", err)
	}
	return nil
}

// ListCommissions returns all commissions for a partner, newest first
func (r *PartnerRepository) ListCommissions(ctx context.Context, partnerID string) ([]*model.Commission, error) {
	query := `
		SELECT id, partner_id, project_name, amount, status, created_at
		FROM commissions
		WHERE partner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	defer rows.Close()

	var commissions []*model.Commission
	for rows.Next() {
		var c model.Commission
		if err := rows.Scan(
			&c.ID,
			&c.PartnerID,
			&c.ProjectName,
			&c.Amount,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		commissions = append(commissions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate commissions: %w", err)
	}
	return commissions, nil
}

func (r *PartnerRepository) scanPartner(row *sql.Row) (*model.Partner, error) {
	var p model.Partner
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ReferralCode,
		&p.CommissionRate,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan partner: %w", err)
	}
	return &p, nil
}
