package model

import (
	"time"
)

// ContactInquiry represents a contact-form submission
type ContactInquiry struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	// Phone is optional; emails render a fixed placeholder when absent
	Phone     *string   `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
