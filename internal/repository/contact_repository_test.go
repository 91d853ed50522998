package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/model"
)

func TestContactRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("with phone", func(t *testing.T) {
		db, mock := newMockDB(t)
		phone := "+595 985 990 046"
		inquiry := &model.ContactInquiry{
			ID:        "inq-1",
			FullName:  "Ana Pérez",
			Email:     "ana@x.com",
			Phone:     &phone,
			Subject:   "Cotización",
			Message:   "Necesito un presupuesto",
			CreatedAt: now,
		}
		mock.ExpectExec(`INSERT INTO contact_inquiries`).
			WithArgs("inq-1", "Ana Pérez", "ana@x.com", phone, "Cotización", "Necesito un presupuesto", now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewContactRepository(db)
		require.NoError(t, repo.Create(ctx, inquiry))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without phone stores null", func(t *testing.T) {
		db, mock := newMockDB(t)
		inquiry := &model.ContactInquiry{
			ID:        "inq-2",
			FullName:  "Juan Gómez",
			Email:     "juan@x.com",
			Subject:   "Soporte",
			Message:   "Tengo un problema",
			CreatedAt: now,
		}
		mock.ExpectExec(`INSERT INTO contact_inquiries`).
			WithArgs("inq-2", "Juan Gómez", "juan@x.com", nil, "Soporte", "Tengo un problema", now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewContactRepository(db)
		require.NoError(t, repo.Create(ctx, inquiry))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContactRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "full_name", "email", "phone", "subject", "message", "created_at"}).
		AddRow("inq-2", "Juan Gómez", "juan@x.com", nil, "Soporte", "Tengo un problema", now).
		AddRow("inq-1", "Ana Pérez", "ana@x.com", "+595 985 990 046", "Cotización", "Necesito un presupuesto", now.Add(-time.Hour))
	mock.ExpectQuery(`SELECT id, full_name, email, phone, subject, message, created_at`).
		WithArgs(20).
		WillReturnRows(rows)

	repo := NewContactRepository(db)
	inquiries, err := repo.ListRecent(ctx, 20)
	require.NoError(t, err)
	require.Len(t, inquiries, 2)
	require.Nil(t, inquiries[0].Phone)
	require.NotNil(t, inquiries[1].Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}
