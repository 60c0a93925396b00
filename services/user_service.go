package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/storage"
)

const maxAvatarBytes = 5 << 20

// GetUserInput selects which lookup to perform; with neither field set the
// acting identity's own row is returned.
type GetUserInput struct {
	UserID   string
	UserName string
}

type UserService interface {
	SignIn(ctx context.Context, identity *Identity) (*models.User, error)
	Get(ctx context.Context, identity *Identity, input GetUserInput) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
	uploader storage.FileUploader // nil disables avatar mirroring
	client   *http.Client
	logger   *slog.Logger
}

func NewUserService(userRepo repositories.UserRepository, uploader storage.FileUploader, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		uploader: uploader,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

// SignIn creates the user row backing a verified identity: the provider login
// becomes the name, the provider avatar the icon.
func (s *userService) SignIn(ctx context.Context, identity *Identity) (*models.User, error) {
	iconURL := identity.AvatarURL
	if s.uploader != nil && identity.AvatarURL != "" {
		mirrored, err := s.mirrorAvatar(ctx, identity)
		if err != nil {
			// Mirroring is best effort; fall back to the provider URL.
			s.logger.Warn("failed to mirror avatar",
				slog.String("login", identity.Login), slog.Any("error", err))
		} else {
			iconURL = mirrored
		}
	}

	user := &models.User{
		Name:    identity.Login,
		IconURL: iconURL,
		Profile: "",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserNameConflict) {
			return nil, ErrUserNameConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, identity *Identity, input GetUserInput) (*models.User, error) {
	switch {
	case input.UserID != "":
		id, err := parseID(input.UserID)
		if err != nil {
			return nil, err
		}
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		return user, nil
	case input.UserName != "":
		return resolveUser(ctx, s.userRepo, input.UserName)
	default:
		return resolveUser(ctx, s.userRepo, identity.Login)
	}
}

// mirrorAvatar downloads the provider avatar and re-uploads it to owned
// storage, so the stored icon URL does not rot when the provider rotates CDN
// links. Returns the public URL of the mirrored object.
func (s *userService) mirrorAvatar(ctx context.Context, identity *Identity) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, identity.AvatarURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build avatar request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("avatar fetch returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("avatars/%s", identity.Login)
	result, err := s.uploader.Upload(ctx, key, contentType, io.LimitReader(resp.Body, maxAvatarBytes))
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return result.Location, nil
}
