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
	ErrRequestConflict    = errors.New("user has already requested to join this team")
	ErrRequestTeamInvalid = errors.New("request references an unknown team")
	ErrRequestUserInvalid = errors.New("request references an unknown user")
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Request, error)
}

type postgresRequestRepository struct {
	db *sql.DB
}

func NewPostgresRequestRepository(db *sql.DB) RequestRepository {
	return &postgresRequestRepository{db: db}
}

func (r *postgresRequestRepository) Create(ctx context.Context, request *models.Request) error {
	query := `
		INSERT INTO requests (team_id, user_id, message)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		request.TeamID,
		request.UserID,
		request.Message,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return constraintError(err, map[string]error{
			"requests_pkey":         ErrRequestConflict,
			"requests_team_id_fkey": ErrRequestTeamInvalid,
			"requests_user_id_fkey": ErrRequestUserInvalid,
		})
	}
	return nil
}

func (r *postgresRequestRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Request, error) {
	query := `
		SELECT team_id, user_id, message, created_at, updated_at
		FROM requests
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests by user: %w", err)
	}
	defer rows.Close()

	requests := []models.Request{}
	for rows.Next() {
		var request models.Request
		if err := rows.Scan(
			&request.TeamID,
			&request.UserID,
			&request.Message,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate requests: %w", err)
	}
	return requests, nil
}
