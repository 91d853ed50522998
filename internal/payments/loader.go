// Package payments loads the MercadoPago configuration stored in the
// database. The credentials are warmed up best-effort at startup: the server
// comes up even when they are missing, and the routes that need them surface
// the degraded state lazily.
package payments

import (
	"context"
	"sync"

	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
)

// SettingsStore reads the stored MercadoPago credentials.
type SettingsStore interface {
	Get(ctx context.Context) (*model.PaymentSettings, error)
}

// Loader holds the in-memory copy of the payment configuration.
// Safe for concurrent use.
type Loader struct {
	store SettingsStore
	log   *logger.Logger

	mu       sync.RWMutex
	settings *model.PaymentSettings
}

// NewLoader creates a Loader. Current returns nothing until Load succeeds.
func NewLoader(store SettingsStore, log *logger.Logger) *Loader {
	return &Loader{
		store: store,
		log:   log.WithComponent("payments"),
	}
}

// Load reads the settings from storage and caches them. A failure leaves any
// previously loaded settings in place.
func (l *Loader) Load(ctx context.Context) error {
	settings, err := l.store.Get(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.settings = settings
	l.mu.Unlock()

	l.log.Info().Time("updated_at", settings.UpdatedAt).Msg("MercadoPago configuration loaded")
	return nil
}

// Current returns the loaded configuration. ok is false until a Load has
// succeeded.
func (l *Loader) Current() (model.PaymentSettings, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.settings == nil {
		return model.PaymentSettings{}, false
	}
	return *l.settings, true
}
