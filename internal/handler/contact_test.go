package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/email"
	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
	"github.com/softwarepar/softwarepar/internal/service"
)

type stubContactStore struct {
	created []*model.ContactInquiry
}

func (s *stubContactStore) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	s.created = append(s.created, inquiry)
	return nil
}

func (s *stubContactStore) ListRecent(ctx context.Context, limit int) ([]*model.ContactInquiry, error) {
	return s.created, nil
}

type stubSender struct {
	sent []email.Message
}

func (s *stubSender) Send(ctx context.Context, msg email.Message) error {
	s.sent = append(s.sent, msg)
	return nil
}

func newContactHandler(store *stubContactStore, sender *stubSender) *Handler {
	log := logger.New("error", "json")
	notifications := service.NewNotificationService(sender, "softwarepar.lat@gmail.com", log)
	return &Handler{
		log:        log,
		contactSvc: service.NewContactService(store, notifications, log),
	}
}

func TestSubmitContact(t *testing.T) {
	store := &stubContactStore{}
	sender := &stubSender{}
	h := newContactHandler(store, sender)

	body := `{"fullName":"Ana Pérez","email":"ana@x.com","subject":"Cotización","message":"Necesito un presupuesto"}`
	rec := httptest.NewRecorder()
	h.SubmitContact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.created, 1)
	assert.Nil(t, store.created[0].Phone)
	assert.Len(t, sender.sent, 2)
}

func TestSubmitContact_MissingFields(t *testing.T) {
	h := newContactHandler(&stubContactStore{}, &stubSender{})

	body := `{"fullName":"Ana","email":"","subject":"Hola","message":"x"}`
	rec := httptest.NewRecorder()
	h.SubmitContact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestSubmitContact_InvalidBody(t *testing.T) {
	h := newContactHandler(&stubContactStore{}, &stubSender{})

	rec := httptest.NewRecorder()
	h.SubmitContact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String())
}
