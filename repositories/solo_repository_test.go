package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
)

func TestSoloCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresSoloRepository(db)

	solo := &models.Solo{EventID: uuid.New(), UserID: uuid.New()}
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO solos`)).
		WithArgs(solo.EventID, solo.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Create(context.Background(), solo))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoloCreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresSoloRepository(db)

	solo := &models.Solo{EventID: uuid.New(), UserID: uuid.New()}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO solos`)).
		WithArgs(solo.EventID, solo.UserID).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "solos_pkey"})

	err = repo.Create(context.Background(), solo)
	assert.ErrorIs(t, err, ErrSoloConflict)
}

func TestSoloCreateUnknownEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresSoloRepository(db)

	solo := &models.Solo{EventID: uuid.New(), UserID: uuid.New()}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO solos`)).
		WithArgs(solo.EventID, solo.UserID).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "solos_event_id_fkey"})

	err = repo.Create(context.Background(), solo)
	assert.ErrorIs(t, err, ErrSoloEventInvalid)
}

func TestSoloListUsersByEventID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresSoloRepository(db)

	eventID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "icon_url", "profile", "created_at", "updated_at"}).
		AddRow(uuid.New(), "octocat", "https://avatars.example.com/u/1", "", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN users u ON u.id = s.user_id`)).
		WithArgs(eventID).
		WillReturnRows(rows)

	users, err := repo.ListUsersByEventID(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "octocat", users[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
