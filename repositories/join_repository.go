package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
)

var (
	ErrJoinConflict    = errors.New("user is already a member of this team")
	ErrJoinTeamInvalid = errors.New("join references an unknown team")
	ErrJoinUserInvalid = errors.New("join references an unknown user")
)

type JoinRepository interface {
	Create(ctx context.Context, join *models.Join) error
}

type postgresJoinRepository struct {
	db *sql.DB
}

func NewPostgresJoinRepository(db *sql.DB) JoinRepository {
	return &postgresJoinRepository{db: db}
}

func (r *postgresJoinRepository) Create(ctx context.Context, join *models.Join) error {
	query := `
		INSERT INTO joins (team_id, user_id)
		VALUES ($1, $2)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		join.TeamID,
		join.UserID,
	).Scan(&join.CreatedAt, &join.UpdatedAt)

	if err != nil {
		return constraintError(err, map[string]error{
			"joins_pkey":         ErrJoinConflict,
			"joins_team_id_fkey": ErrJoinTeamInvalid,
			"joins_user_id_fkey": ErrJoinUserInvalid,
		})
	}
	return nil
}
