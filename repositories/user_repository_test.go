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

func TestUserCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("octocat", "https://avatars.example.com/u/1", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	user := &models.User{Name: "octocat", IconURL: "https://avatars.example.com/u/1"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, id, user.ID)
}

func TestUserCreateNameConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("octocat", "", "").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_name_key"})

	err = repo.Create(context.Background(), &models.User{Name: "octocat"})
	assert.ErrorIs(t, err, ErrUserNameConflict)
}

func TestUserGetByNameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name = $1`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon_url", "profile", "created_at", "updated_at"}))

	_, err = repo.GetByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepository(db)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "icon_url", "profile", "created_at", "updated_at"}).
		AddRow(id, "octocat", "https://avatars.example.com/u/1", "likes Go", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Name)
	assert.Equal(t, "likes Go", user.Profile)
}
