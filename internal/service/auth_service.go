package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/softwarepar/softwarepar/internal/auth"
	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
	"github.com/softwarepar/softwarepar/internal/repository"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles registration, login and session token issuance.
type AuthService struct {
	users         UserStore
	tokens        *auth.TokenService
	notifications *NotificationService
	log           *logger.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(users UserStore, tokens *auth.TokenService, notifications *NotificationService, log *logger.Logger) *AuthService {
	return &AuthService{
		users:         users,
		tokens:        tokens,
		notifications: notifications,
		log:           log.WithComponent("auth"),
	}
}

// RegisterInput holds a registration request.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     model.UserRole
}

// Session is the result of a successful register or login.
type Session struct {
	User  *model.User
	Token string
}

// Register creates a user account, sends the welcome email and issues a
// session token. The welcome email is best effort: registration succeeds
// even when delivery fails.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = model.RoleClient
	}
	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.notifications.SendWelcome(ctx, user.Email, user.FullName); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("welcome email not delivered")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}

// GetUser returns the user account for an authenticated subject.
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
