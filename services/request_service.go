package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
)

const maxRequestMessageLength = 400

type CreateRequestInput struct {
	TeamID  string
	UserID  string
	Message string
}

type RequestService interface {
	Create(ctx context.Context, input CreateRequestInput) (*models.Request, error)
	ListForUser(ctx context.Context, identity *Identity) ([]models.Request, error)
}

type requestService struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
}

func NewRequestService(requestRepo repositories.RequestRepository, userRepo repositories.UserRepository) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

func (s *requestService) Create(ctx context.Context, input CreateRequestInput) (*models.Request, error) {
	teamID, err := parseID(input.TeamID)
	if err != nil {
		return nil, err
	}
	userID, err := parseID(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(input.Message) > maxRequestMessageLength {
		return nil, ErrRequestMessageTooLong
	}

	request := &models.Request{
		TeamID:  teamID,
		UserID:  userID,
		Message: input.Message,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRequestConflict):
			return nil, ErrAlreadyRequested
		case errors.Is(err, repositories.ErrRequestTeamInvalid):
			return nil, ErrTeamReferenceInvalid
		case errors.Is(err, repositories.ErrRequestUserInvalid):
			return nil, ErrUserReferenceInvalid
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return request, nil
}

// ListForUser lists the acting user's own pending join requests.
func (s *requestService) ListForUser(ctx context.Context, identity *Identity) ([]models.Request, error) {
	user, err := resolveUser(ctx, s.userRepo, identity.Login)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for user: %w", err)
	}
	return requests, nil
}
