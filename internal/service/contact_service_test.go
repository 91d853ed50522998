package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/model"
)

// fakeContactStore implements ContactStore for tests.
type fakeContactStore struct {
	created []*model.ContactInquiry
	err     error
}

func (f *fakeContactStore) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, inquiry)
	return nil
}

func (f *fakeContactStore) ListRecent(ctx context.Context, limit int) ([]*model.ContactInquiry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.created) {
		limit = len(f.created)
	}
	return f.created[:limit], nil
}

func TestSubmitInquiry(t *testing.T) {
	store := &fakeContactStore{}
	sender := newFakeSender()
	svc := NewContactService(store, newTestNotifications(sender), logger.New("error", "json"))

	phone := "+595 981 123456"
	inquiry, err := svc.SubmitInquiry(context.Background(), SubmitInquiryInput{
		FullName: "Ana Pérez",
		Email:    "ana@x.com",
		Phone:    &phone,
		Subject:  "Cotización",
		Message:  "Necesito un presupuesto",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	require.Len(t, store.created, 1)

	// one notice to the operator, one confirmation to the client
	msgs := sender.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, operatorMailbox, msgs[0].To)
	assert.Equal(t, "ana@x.com", msgs[1].To)
}

func TestSubmitInquiry_StorageFailureFailsSubmission(t *testing.T) {
	store := &fakeContactStore{err: errors.New("connection refused")}
	sender := newFakeSender()
	svc := NewContactService(store, newTestNotifications(sender), logger.New("error", "json"))

	_, err := svc.SubmitInquiry(context.Background(), SubmitInquiryInput{
		FullName: "Ana",
		Email:    "ana@x.com",
		Subject:  "Cotización",
		Message:  "Hola",
	})
	require.Error(t, err)
	assert.Empty(t, sender.messages(), "no emails may go out when the inquiry was not recorded")
}

func TestSubmitInquiry_EmailFailureStillSucceeds(t *testing.T) {
	store := &fakeContactStore{}
	sender := newFakeSender()
	sender.err = errors.New("smtp: 451 temporary failure")
	svc := NewContactService(store, newTestNotifications(sender), logger.New("error", "json"))

	inquiry, err := svc.SubmitInquiry(context.Background(), SubmitInquiryInput{
		FullName: "Ana",
		Email:    "ana@x.com",
		Subject:  "Cotización",
		Message:  "Hola",
	})
	require.NoError(t, err)
	assert.NotNil(t, inquiry)
	require.Len(t, store.created, 1)
}
