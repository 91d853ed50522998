package model

import (
	"time"
)

// UserRole represents the role of a user account
type UserRole string

const (
	RoleClient  UserRole = "client"
	RolePartner UserRole = "partner"
	RoleAdmin   UserRole = "admin"
)

// User represents the core user entity
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"` // never expose password hash
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
