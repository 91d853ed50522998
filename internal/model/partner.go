package model

import (
	"time"
)

// Partner represents a referral partner linked to a user account
type Partner struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	ReferralCode   string    `json:"referralCode"`
	CommissionRate string    `json:"commissionRate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CommissionStatus represents the processing state of a commission
type CommissionStatus string

const (
	CommissionPending   CommissionStatus = "pending"
	CommissionProcessed CommissionStatus = "processed"
	CommissionPaid      CommissionStatus = "paid"
)

// Commission represents a commission earned by a partner on a project sale.
// Amount is kept as the caller-supplied string and interpolated verbatim
// into notification emails.
type Commission struct {
	ID          string           `json:"id"`
	PartnerID   string           `json:"partnerId"`
	ProjectName string           `json:"projectName"`
	Amount      string           `json:"amount"`
	Status      CommissionStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}
