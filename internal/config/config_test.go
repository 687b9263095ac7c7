package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/naka-gawa/devfolio/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	// Keep a stray devfolio.yaml in the package directory out of the way.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, domain.FallbackLogin, cfg.GitHub.Username)
	assert.Empty(t, cfg.GitHub.Token)
	assert.Empty(t, cfg.GenAI.APIKey)
	assert.Equal(t, gateway.DefaultModel, cfg.GenAI.Model)
	assert.Equal(t, domain.FallbackProfileURL, cfg.ProfileURL())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("GITHUB_USERNAME", "octocat")
	t.Setenv("GITHUB_TOKEN", " ghp_secret ")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("STATIC_DIR", "public")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "octocat", cfg.GitHub.Username)
	assert.Equal(t, "ghp_secret", cfg.GitHub.Token)
	assert.Equal(t, "key", cfg.GenAI.APIKey)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, "https://github.com/octocat", cfg.ProfileURL())
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: 127.0.0.1:9000\ngithub:\n  username: file-user\ngenai:\n  model: gemini-test\n"), 0o600))
	t.Setenv("GITHUB_USERNAME", "env-user")

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "env-user", cfg.GitHub.Username, "environment overrides the file")
	assert.Equal(t, "gemini-test", cfg.GenAI.Model)
}

func TestNewViper_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyUsername(t *testing.T) {
	clearEnv(t)
	v, err := NewViper("")
	require.NoError(t, err)
	v.Set("github.username", "  ")
	_, err = Load(v)
	assert.Error(t, err)
}
