package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
	"github.com/softwarepar/softwarepar/internal/payments"
)

type stubSettingsStore struct {
	settings *model.PaymentSettings
	err      error
}

func (s *stubSettingsStore) Get(ctx context.Context) (*model.PaymentSettings, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.settings, nil
}

func TestGetPaymentConfig_UnavailableBeforeLoad(t *testing.T) {
	loader := payments.NewLoader(&stubSettingsStore{}, logger.New("error", "json"))
	h := &Handler{payments: loader, log: logger.New("error", "json")}

	rec := httptest.NewRecorder()
	h.GetPaymentConfig(rec, httptest.NewRequest(http.MethodGet, "/api/payments/config", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"Payment configuration not available"}`, rec.Body.String())
}

func TestGetPaymentConfig_ExposesOnlyPublicKey(t *testing.T) {
	store := &stubSettingsStore{settings: &model.PaymentSettings{
		AccessToken: "APP_USR-secret-token",
		PublicKey:   "APP_USR-public-key",
	}}
	loader := payments.NewLoader(store, logger.New("error", "json"))
	require.NoError(t, loader.Load(context.Background()))

	h := &Handler{payments: loader, log: logger.New("error", "json")}
	rec := httptest.NewRecorder()
	h.GetPaymentConfig(rec, httptest.NewRequest(http.MethodGet, "/api/payments/config", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"publicKey":"APP_USR-public-key"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret-token")
}
