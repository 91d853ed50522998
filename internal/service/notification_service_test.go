package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/email"
	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
)

const operatorMailbox = "softwarepar.lat@gmail.com"

// fakeSender implements email.Sender for tests.
type fakeSender struct {
	mu   sync.Mutex
	sent []email.Message
	// failFor makes Send fail for the given recipients
	failFor map[string]error
	err     error
}

func newFakeSender() *fakeSender {
	return &fakeSender{failFor: make(map[string]error)}
}

func (f *fakeSender) Send(ctx context.Context, msg email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if err, ok := f.failFor[msg.To]; ok {
		return err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) messages() []email.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]email.Message, len(f.sent))
	copy(out, f.sent)
	return out
}

func newTestNotifications(sender email.Sender) *NotificationService {
	return NewNotificationService(sender, operatorMailbox, logger.New("error", "json"))
}

func TestSendWelcome(t *testing.T) {
	sender := newFakeSender()
	svc := newTestNotifications(sender)

	err := svc.SendWelcome(context.Background(), "ana@example.com", "Ana")
	require.NoError(t, err)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "ana@example.com", msgs[0].To)
	assert.Equal(t, "¡Bienvenido a SoftwarePar!", msgs[0].Subject)
	assert.Contains(t, msgs[0].HTMLBody, "Hola Ana,")
	assert.NotEmpty(t, msgs[0].TextBody)
}

func TestSendContactAdminNotice_RecipientInvariance(t *testing.T) {
	sender := newFakeSender()
	svc := newTestNotifications(sender)

	inquiries := []*model.ContactInquiry{
		{FullName: "Ana Pérez", Email: "ana@x.com", Subject: "Cotización", Message: "Hola"},
		{FullName: "Eve", Email: operatorMailbox, Subject: "Spoof", Message: "..."},
		{FullName: "Juan", Email: "juan@y.com", Subject: "Soporte", Message: "Ayuda"},
	}
	for _, inq := range inquiries {
		require.NoError(t, svc.SendContactAdminNotice(context.Background(), inq))
	}

	for _, msg := range sender.messages() {
		assert.Equal(t, operatorMailbox, msg.To)
	}
}

func TestSendContactAdminNotice_EndToEndFixture(t *testing.T) {
	sender := newFakeSender()
	svc := newTestNotifications(sender)

	inquiry := &model.ContactInquiry{
		FullName: "Ana Pérez",
		Email:    "ana@x.com",
		Phone:    nil,
		Subject:  "Cotización",
		Message:  "Necesito un presupuesto",
	}
	require.NoError(t, svc.SendContactAdminNotice(context.Background(), inquiry))

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Nueva consulta: Cotización - Ana Pérez", msgs[0].Subject)
	assert.Contains(t, msgs[0].HTMLBody, email.PhonePlaceholder)
	assert.Contains(t, msgs[0].HTMLBody, "Necesito un presupuesto")
}

func TestSendPartnerCommissionNotice(t *testing.T) {
	sender := newFakeSender()
	svc := newTestNotifications(sender)

	err := svc.SendPartnerCommissionNotice(context.Background(),
		"carlos@example.com", "Carlos", "150.00", "Tienda Online")
	require.NoError(t, err)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "¡Nueva comisión de $150.00 generada!", msgs[0].Subject)
	assert.Contains(t, msgs[0].HTMLBody, "Tienda Online")
	assert.Contains(t, msgs[0].HTMLBody, "¡Felicitaciones Carlos!")
}

func TestSendFailureIsContained(t *testing.T) {
	sender := newFakeSender()
	sender.err = errors.New("smtp: 550 mailbox unavailable")
	svc := newTestNotifications(sender)

	err := svc.SendWelcome(context.Background(), "ana@example.com", "Ana")
	require.ErrorIs(t, err, ErrDeliveryFailed)
	// Provider detail stays out of the contract
	assert.NotContains(t, err.Error(), "550")
}

func TestConcurrentSendsAreIsolated(t *testing.T) {
	sender := newFakeSender()
	sender.failFor["user-13@example.com"] = errors.New("rejected")
	svc := newTestNotifications(sender)

	const n = 100
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			to := fmt.Sprintf("user-%d@example.com", i)
			errs[i] = svc.SendWelcome(context.Background(), to, fmt.Sprintf("User %d", i))
		}(i)
	}
	wg.Wait()

	failed := 0
	for i, err := range errs {
		if i == 13 {
			assert.ErrorIs(t, err, ErrDeliveryFailed)
			failed++
			continue
		}
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, failed)
	assert.Len(t, sender.messages(), n-1)
}
