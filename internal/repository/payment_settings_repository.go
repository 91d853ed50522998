package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/softwarepar/softwarepar/internal/database"
	"github.com/softwarepar/softwarepar/internal/model"
)

// PaymentSettingsRepository reads the MercadoPago credentials row
type PaymentSettingsRepository struct {
	db *database.Postgres
}

// NewPaymentSettingsRepository creates a new PaymentSettingsRepository
func NewPaymentSettingsRepository(db *database.Postgres) *PaymentSettingsRepository {
	return &PaymentSettingsRepository{db: db}
}

// Get returns the current payment settings. The table holds at most one row;
// ErrNotFound means payments have never been configured.
func (r *PaymentSettingsRepository) Get(ctx context.Context) (*model.PaymentSettings, error) {
	query := `
		SELECT access_token, public_key, updated_at
		FROM payment_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`
	var s model.PaymentSettings
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.AccessToken,
		&s.PublicKey,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load payment settings: %w", err)
	}
	return &s, nil
}
