package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"devevents/internal/database"
	"devevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking *domain.Booking
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name:    "success",
			booking: &domain.Booking{EventID: "ev-1", Email: "gopher@example.com", CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings \(event_id, email, created_at, updated_at\)`).
					WithArgs("ev-1", "gopher@example.com", now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("bk-uuid-1"))
			},
			wantID: "bk-uuid-1",
		},
		{
			name:    "event does not exist",
			booking: &domain.Booking{EventID: "ev-missing", Email: "gopher@example.com", CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "bookings_event_id_fkey"})
			},
			wantErr: domain.ErrEventReference,
		},
		{
			name:    "db error",
			booking: &domain.Booking{EventID: "ev-1", Email: "gopher@example.com", CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewBookingRepository(database.NewManagerWithDB(db))
			err = repo.Create(ctx, tt.booking)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.booking.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "event_id", "email", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(cols).
			AddRow("bk-2", "ev-1", "b@example.com", now, now).
			AddRow("bk-1", "ev-1", "a@example.com", now.Add(-time.Hour), now.Add(-time.Hour))
		mock.ExpectQuery(`SELECT id, event_id, email`).
			WithArgs("ev-1").
			WillReturnRows(rows)

		repo := NewBookingRepository(database.NewManagerWithDB(db))
		bookings, err := repo.ListByEventID(ctx, "ev-1")
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		require.Equal(t, "bk-2", bookings[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, event_id, email`).
			WithArgs("ev-none").
			WillReturnRows(sqlmock.NewRows(cols))

		repo := NewBookingRepository(database.NewManagerWithDB(db))
		bookings, err := repo.ListByEventID(ctx, "ev-none")
		require.NoError(t, err)
		require.Empty(t, bookings)
	})
}
