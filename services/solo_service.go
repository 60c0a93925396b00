package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
)

type SoloService interface {
	Create(ctx context.Context, identity *Identity, eventID string) (*models.Solo, error)
	ListUsersByEvent(ctx context.Context, eventID string) ([]models.User, error)
}

type soloService struct {
	soloRepo repositories.SoloRepository
	userRepo repositories.UserRepository
}

func NewSoloService(soloRepo repositories.SoloRepository, userRepo repositories.UserRepository) SoloService {
	return &soloService{
		soloRepo: soloRepo,
		userRepo: userRepo,
	}
}

// Create records the acting user's intent to join an event without a team.
func (s *soloService) Create(ctx context.Context, identity *Identity, eventID string) (*models.Solo, error) {
	id, err := parseID(eventID)
	if err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, s.userRepo, identity.Login)
	if err != nil {
		return nil, err
	}

	solo := &models.Solo{
		EventID: id,
		UserID:  user.ID,
	}
	if err := s.soloRepo.Create(ctx, solo); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSoloConflict):
			return nil, ErrAlreadySolo
		case errors.Is(err, repositories.ErrSoloEventInvalid):
			return nil, ErrEventReferenceInvalid
		case errors.Is(err, repositories.ErrSoloUserInvalid):
			return nil, ErrUserReferenceInvalid
		}
		return nil, fmt.Errorf("failed to create solo: %w", err)
	}
	return solo, nil
}

func (s *soloService) ListUsersByEvent(ctx context.Context, eventID string) ([]models.User, error) {
	id, err := parseID(eventID)
	if err != nil {
		return nil, err
	}

	users, err := s.soloRepo.ListUsersByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list solo users by event: %w", err)
	}
	return users, nil
}
