package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
)

// fakeSettingsStore implements SettingsStore for tests.
type fakeSettingsStore struct {
	settings *model.PaymentSettings
	err      error
}

func (f *fakeSettingsStore) Get(ctx context.Context) (*model.PaymentSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

func TestLoader_LoadAndCurrent(t *testing.T) {
	store := &fakeSettingsStore{
		settings: &model.PaymentSettings{
			AccessToken: "APP_USR-token",
			PublicKey:   "APP_USR-public",
			UpdatedAt:   time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		},
	}
	loader := NewLoader(store, logger.New("error", "json"))

	_, ok := loader.Current()
	assert.False(t, ok, "configuration must not be available before Load")

	require.NoError(t, loader.Load(context.Background()))

	current, ok := loader.Current()
	require.True(t, ok)
	assert.Equal(t, "APP_USR-public", current.PublicKey)
}

func TestLoader_FailedLoadKeepsPreviousSettings(t *testing.T) {
	store := &fakeSettingsStore{
		settings: &model.PaymentSettings{PublicKey: "APP_USR-public"},
	}
	loader := NewLoader(store, logger.New("error", "json"))
	require.NoError(t, loader.Load(context.Background()))

	store.err = errors.New("connection refused")
	require.Error(t, loader.Load(context.Background()))

	current, ok := loader.Current()
	require.True(t, ok)
	assert.Equal(t, "APP_USR-public", current.PublicKey)
}

func TestLoader_FailedFirstLoadLeavesDegradedMode(t *testing.T) {
	store := &fakeSettingsStore{err: errors.New("network timeout")}
	loader := NewLoader(store, logger.New("error", "json"))

	require.Error(t, loader.Load(context.Background()))
	_, ok := loader.Current()
	assert.False(t, ok)
}
