package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
)

// parseID parses a client-supplied identifier string. A malformed identifier
// is a validation failure, not a storage failure.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// resolveUser looks up the user row backing a verified identity login.
func resolveUser(ctx context.Context, userRepo repositories.UserRepository, login string) (*models.User, error) {
	user, err := userRepo.GetByName(ctx, login)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user %q: %w", login, err)
	}
	return user, nil
}
