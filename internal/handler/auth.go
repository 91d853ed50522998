package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/softwarepar/softwarepar/internal/middleware"
	"github.com/softwarepar/softwarepar/internal/model"
	"github.com/softwarepar/softwarepar/internal/service"
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse represents a successful register or login
type SessionResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.FullName == "" {
		writeMessage(w, http.StatusBadRequest, "Email and full name are required")
		return
	}
	if len(req.Password) < 8 {
		writeMessage(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	role := model.UserRole(req.Role)
	switch role {
	case "", model.RoleClient, model.RolePartner:
	default:
		// Admin accounts are provisioned out of band
		writeMessage(w, http.StatusBadRequest, "Invalid role")
		return
	}

	session, err := h.authSvc.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeMessage(w, http.StatusConflict, "Email already registered")
			return
		}
		h.log.Error().Err(err).Msg("registration failed")
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	// Partner accounts also get their partner record and referral code
	if session.User.Role == model.RolePartner {
		if _, err := h.partnerSvc.EnrollPartner(r.Context(), session.User.ID); err != nil {
			h.log.Error().Err(err).Str("user_id", session.User.ID).Msg("partner enrollment failed")
		}
	}

	writeJSON(w, http.StatusCreated, SessionResponse{User: session.User, Token: session.Token})
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.authSvc.Login(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{User: session.User, Token: session.Token})
}

// GetCurrentUser handles GET /api/users/me
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.authSvc.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Msg("failed to load current user")
		writeMessage(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
