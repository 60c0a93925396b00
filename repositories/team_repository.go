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
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamEventInvalid  = errors.New("team references an unknown event")
	ErrTeamReaderInvalid = errors.New("team references an unknown reader")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Team, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (event_id, reader_id, name, "desc")
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		team.EventID,
		team.ReaderID,
		team.Name,
		team.Desc,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)

	if err != nil {
		return constraintError(err, map[string]error{
			"teams_event_id_fkey":  ErrTeamEventInvalid,
			"teams_reader_id_fkey": ErrTeamReaderInvalid,
		})
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := `
		SELECT id, event_id, reader_id, name, "desc", created_at, updated_at
		FROM teams
		WHERE id = $1`

	var team models.Team
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.EventID,
		&team.ReaderID,
		&team.Name,
		&team.Desc,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to scan team: %w", err)
	}
	return &team, nil
}

func (r *postgresTeamRepository) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Team, error) {
	query := `
		SELECT id, event_id, reader_id, name, "desc", created_at, updated_at
		FROM teams
		WHERE event_id = $1
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams by event: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(
			&team.ID,
			&team.EventID,
			&team.ReaderID,
			&team.Name,
			&team.Desc,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}
	return teams, nil
}
