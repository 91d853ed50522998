package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/auth"
	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
)

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		Issuer:        "softwarepar-test",
	})
	require.NoError(t, err)
	return tokens
}

func TestRegister(t *testing.T) {
	users := newFakeUserStore()
	sender := newFakeSender()
	svc := NewAuthService(users, newTestTokenService(t), newTestNotifications(sender), logger.New("error", "json"))

	session, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		FullName: "Ana Pérez",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, model.RoleClient, session.User.Role)
	assert.NotEqual(t, "s3cret-pass", session.User.PasswordHash)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "ana@example.com", msgs[0].To)
	assert.Equal(t, "¡Bienvenido a SoftwarePar!", msgs[0].Subject)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserStore(&model.User{ID: "u-1", Email: "ana@example.com"})
	svc := NewAuthService(users, newTestTokenService(t),
		newTestNotifications(newFakeSender()), logger.New("error", "json"))

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "whatever",
		FullName: "Ana",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_WelcomeFailureStillRegisters(t *testing.T) {
	users := newFakeUserStore()
	sender := newFakeSender()
	sender.err = errors.New("provider down")
	svc := NewAuthService(users, newTestTokenService(t), newTestNotifications(sender), logger.New("error", "json"))

	session, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		FullName: "Ana",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Len(t, users.users, 1)
}

func TestLogin(t *testing.T) {
	users := newFakeUserStore()
	tokens := newTestTokenService(t)
	svc := NewAuthService(users, tokens, newTestNotifications(newFakeSender()), logger.New("error", "json"))

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		FullName: "Ana",
	})
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	claims, err := tokens.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, newTestTokenService(t), newTestNotifications(newFakeSender()), logger.New("error", "json"))

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		FullName: "Ana",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
