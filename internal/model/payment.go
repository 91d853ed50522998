package model

import (
	"time"
)

// PaymentSettings holds the MercadoPago credentials stored in the database.
// They are loaded best-effort at startup and refreshed on demand.
type PaymentSettings struct {
	AccessToken string    `json:"-"` // never expose the access token
	PublicKey   string    `json:"publicKey"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
