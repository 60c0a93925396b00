package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// Client identifier sent to the identity provider on every whoami call.
	githubUserAgent = "HotchPotch"

	verifyTimeout   = 10 * time.Second
	maxProviderBody = 1 << 20
)

// Identity is the stable identity returned by the provider's whoami endpoint.
type Identity struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// AuthService exchanges a bearer token for an identity. Any provider failure
// surfaces as ErrAuthenticationFailed; there are no retries.
type AuthService interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type githubAuthService struct {
	apiURL string
	client *http.Client
	group  singleflight.Group
}

func NewGitHubAuthService(apiURL string) AuthService {
	return &githubAuthService{
		apiURL: strings.TrimSuffix(apiURL, "/"),
		client: &http.Client{Timeout: verifyTimeout},
	}
}

func (s *githubAuthService) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrAuthenticationFailed
	}

	// Concurrent verifications of the same token share one provider call.
	v, err, _ := s.group.Do(token, func() (interface{}, error) {
		return s.fetchIdentity(ctx, token)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Identity), nil
}

func (s *githubAuthService) fetchIdentity(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	req.Header.Set("User-Agent", githubUserAgent)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", ErrAuthenticationFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, fmt.Errorf("%w: malformed provider response: %v", ErrAuthenticationFailed, err)
	}
	if identity.Login == "" {
		return nil, fmt.Errorf("%w: provider response is missing login", ErrAuthenticationFailed)
	}

	return &identity, nil
}
