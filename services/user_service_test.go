package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/storage"
)

type fakeUploader struct {
	lastKey         string
	lastContentType string
	uploaded        []byte
}

func (f *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	f.lastKey = key
	f.lastContentType = contentType
	f.uploaded = body
	return &storage.UploadResult{Key: key, Location: f.GetPublicURL(key)}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeUploader) GetPublicURL(key string) string {
	return fmt.Sprintf("https://cdn.example.com/%s", key)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSignInStoresProviderAvatarWithoutUploader(t *testing.T) {
	userRepo := &fakeUserRepo{byName: map[string]*models.User{}}
	svc := NewUserService(userRepo, nil, testLogger())

	user, err := svc.SignIn(context.Background(), &Identity{
		Login:     "octocat",
		AvatarURL: "https://avatars.example.com/u/1",
	})
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Name)
	assert.Equal(t, "https://avatars.example.com/u/1", user.IconURL)
	assert.Empty(t, user.Profile)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestSignInMirrorsAvatar(t *testing.T) {
	avatars := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer avatars.Close()

	uploader := &fakeUploader{}
	userRepo := &fakeUserRepo{byName: map[string]*models.User{}}
	svc := NewUserService(userRepo, uploader, testLogger())

	user, err := svc.SignIn(context.Background(), &Identity{
		Login:     "octocat",
		AvatarURL: avatars.URL + "/u/1",
	})
	require.NoError(t, err)
	assert.Equal(t, "avatars/octocat", uploader.lastKey)
	assert.Equal(t, "image/png", uploader.lastContentType)
	assert.Equal(t, []byte("png-bytes"), uploader.uploaded)
	assert.Equal(t, "https://cdn.example.com/avatars/octocat", user.IconURL)
}

func TestSignInFallsBackWhenMirrorFails(t *testing.T) {
	avatars := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer avatars.Close()

	userRepo := &fakeUserRepo{byName: map[string]*models.User{}}
	svc := NewUserService(userRepo, &fakeUploader{}, testLogger())

	user, err := svc.SignIn(context.Background(), &Identity{
		Login:     "octocat",
		AvatarURL: avatars.URL + "/u/1",
	})
	require.NoError(t, err)
	assert.Equal(t, avatars.URL+"/u/1", user.IconURL)
}

func TestSignInNameConflict(t *testing.T) {
	userRepo := &fakeUserRepo{createErr: repositories.ErrUserNameConflict}
	svc := NewUserService(userRepo, nil, testLogger())

	_, err := svc.SignIn(context.Background(), &Identity{Login: "octocat"})
	assert.ErrorIs(t, err, ErrUserNameConflict)
}

func TestGetDefaultsToActingIdentity(t *testing.T) {
	me := &models.User{ID: uuid.New(), Name: "octocat"}
	userRepo := &fakeUserRepo{byName: map[string]*models.User{"octocat": me}}
	svc := NewUserService(userRepo, nil, testLogger())

	user, err := svc.Get(context.Background(), &Identity{Login: "octocat"}, GetUserInput{})
	require.NoError(t, err)
	assert.Equal(t, me.ID, user.ID)
}

func TestGetByMalformedID(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, nil, testLogger())

	_, err := svc.Get(context.Background(), &Identity{Login: "octocat"}, GetUserInput{UserID: "zzz"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestGetByNameNotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{byName: map[string]*models.User{}}, nil, testLogger())

	_, err := svc.Get(context.Background(), &Identity{Login: "octocat"}, GetUserInput{UserName: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
