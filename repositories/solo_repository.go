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
	ErrSoloConflict     = errors.New("user is already registered solo for this event")
	ErrSoloEventInvalid = errors.New("solo references an unknown event")
	ErrSoloUserInvalid  = errors.New("solo references an unknown user")
)

type SoloRepository interface {
	Create(ctx context.Context, solo *models.Solo) error
	ListUsersByEventID(ctx context.Context, eventID uuid.UUID) ([]models.User, error)
}

type postgresSoloRepository struct {
	db *sql.DB
}

func NewPostgresSoloRepository(db *sql.DB) SoloRepository {
	return &postgresSoloRepository{db: db}
}

func (r *postgresSoloRepository) Create(ctx context.Context, solo *models.Solo) error {
	query := `
		INSERT INTO solos (event_id, user_id)
		VALUES ($1, $2)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		solo.EventID,
		solo.UserID,
	).Scan(&solo.CreatedAt, &solo.UpdatedAt)

	if err != nil {
		return constraintError(err, map[string]error{
			"solos_pkey":          ErrSoloConflict,
			"solos_event_id_fkey": ErrSoloEventInvalid,
			"solos_user_id_fkey":  ErrSoloUserInvalid,
		})
	}
	return nil
}

// ListUsersByEventID returns the users registered solo for an event, joined in
// one query rather than a row-per-solo lookup.
func (r *postgresSoloRepository) ListUsersByEventID(ctx context.Context, eventID uuid.UUID) ([]models.User, error) {
	query := `
		SELECT u.id, u.name, u.icon_url, u.profile, u.created_at, u.updated_at
		FROM solos s
		JOIN users u ON u.id = s.user_id
		WHERE s.event_id = $1
		ORDER BY s.created_at`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query solo users by event: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.IconURL,
			&user.Profile,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan solo user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate solo users: %w", err)
	}
	return users, nil
}
