package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNameConflict = errors.New("user name conflict")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, icon_url, profile)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.IconURL,
		user.Profile,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return constraintError(err, map[string]error{
			"users_name_key": ErrUserNameConflict,
		})
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, icon_url, profile, created_at, updated_at
		FROM users
		WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *postgresUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	query := `
		SELECT id, name, icon_url, profile, created_at, updated_at
		FROM users
		WHERE name = $1`
	return r.scanUser(ctx, query, name)
}

func (r *postgresUserRepository) scanUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.IconURL,
		&user.Profile,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
