package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hotchpotch?sslmode=disable")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("GITHUB_API_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://api.github.com", cfg.GitHubAPIURL)
	assert.False(t, cfg.R2Configured())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hotchpotch")
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SERVER_PORT", "70000")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadSplitsOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hotchpotch")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSAllowedOrigins)
}

func TestR2Configured(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hotchpotch")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "bucket")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.R2Configured())
}
