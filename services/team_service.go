package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
)

type CreateTeamInput struct {
	EventID string
	Name    string
	Desc    string
}

type TeamService interface {
	Create(ctx context.Context, identity *Identity, input CreateTeamInput) (*models.Team, error)
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
}

func NewTeamService(teamRepo repositories.TeamRepository, userRepo repositories.UserRepository) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// Create forms a team for an event with the acting user as its reader.
func (s *teamService) Create(ctx context.Context, identity *Identity, input CreateTeamInput) (*models.Team, error) {
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}
	eventID, err := parseID(input.EventID)
	if err != nil {
		return nil, err
	}

	reader, err := resolveUser(ctx, s.userRepo, identity.Login)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		EventID:  eventID,
		ReaderID: reader.ID,
		Name:     input.Name,
		Desc:     input.Desc,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamEventInvalid):
			return nil, ErrEventReferenceInvalid
		case errors.Is(err, repositories.ErrTeamReaderInvalid):
			return nil, ErrUserReferenceInvalid
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, teamID string) (*models.Team, error) {
	id, err := parseID(teamID)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *teamService) ListByEvent(ctx context.Context, eventID string) ([]models.Team, error) {
	id, err := parseID(eventID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by event: %w", err)
	}
	return teams, nil
}
