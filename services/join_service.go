package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
)

type JoinService interface {
	Create(ctx context.Context, identity *Identity, teamID string) (*models.Join, error)
}

type joinService struct {
	joinRepo repositories.JoinRepository
	userRepo repositories.UserRepository
}

func NewJoinService(joinRepo repositories.JoinRepository, userRepo repositories.UserRepository) JoinService {
	return &joinService{
		joinRepo: joinRepo,
		userRepo: userRepo,
	}
}

// Create records the acting user's membership in a team. A second attempt for
// the same pair is rejected by the composite key.
func (s *joinService) Create(ctx context.Context, identity *Identity, teamID string) (*models.Join, error) {
	id, err := parseID(teamID)
	if err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, s.userRepo, identity.Login)
	if err != nil {
		return nil, err
	}

	join := &models.Join{
		TeamID: id,
		UserID: user.ID,
	}
	if err := s.joinRepo.Create(ctx, join); err != nil {
		switch {
		case errors.Is(err, repositories.ErrJoinConflict):
			return nil, ErrAlreadyJoined
		case errors.Is(err, repositories.ErrJoinTeamInvalid):
			return nil, ErrTeamReferenceInvalid
		case errors.Is(err, repositories.ErrJoinUserInvalid):
			return nil, ErrUserReferenceInvalid
		}
		return nil, fmt.Errorf("failed to create join: %w", err)
	}
	return join, nil
}
