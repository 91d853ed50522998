package repository

import (
	"context"
	"fmt"

	"github.com/softwarepar/softwarepar/internal/database"
	"github.com/softwarepar/softwarepar/internal/model"
)

// ContactRepository handles contact-inquiry persistence
type ContactRepository struct {
	db *database.Postgres
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *database.Postgres) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact inquiry
func (r *ContactRepository) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	query := `
		INSERT INTO contact_inquiries (id, full_name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		inquiry.ID,
		inquiry.FullName,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Subject,
		inquiry.Message,
		inquiry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact inquiry: %w", err)
	}
	return nil
}

// ListRecent returns the most recent inquiries, newest first
func (r *ContactRepository) ListRecent(ctx context.Context, limit int) ([]*model.ContactInquiry, error) {
	query := `
		SELECT id, full_name, email, phone, subject, message, created_at
		FROM contact_inquiries
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*model.ContactInquiry
	for rows.Next() {
		var inq model.ContactInquiry
		if err := rows.Scan(
			&inq.ID,
			&inq.FullName,
			&inq.Email,
			&inq.Phone,
			&inq.Subject,
			&inq.Message,
			&inq.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact inquiry: %w", err)
		}
		inquiries = append(inquiries, &inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact inquiries: %w", err)
	}
	return inquiries, nil
}
