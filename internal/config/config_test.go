package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"PORT", "PORTFOLIO_ADDR", "PORTFOLIO_MODE", "PORTFOLIO_CONTENT_FILE"} {
		t.Setenv(env, "")
	}
	for key, env := range legacyEnv {
		t.Setenv(env, "")
		t.Setenv(envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, found, err := Load(New(), "")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.ContentFile)
	assert.True(t, cfg.Background)
	assert.True(t, cfg.Analytics.Enabled)
	assert.Equal(t, "file:portfolio?mode=memory&cache=shared", cfg.Analytics.DSN)
	assert.Equal(t, 365, cfg.Analytics.RetentionDays)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Configured())
}

func TestLoad_PortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")

	cfg, _, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoad_LegacySMTPEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("TO_EMAIL", "inbox@example.com")
	t.Setenv("ADMIN_USERNAME", "root")

	cfg, _, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
	assert.Equal(t, "inbox@example.com", cfg.SMTP.To)
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.True(t, cfg.SMTP.Configured())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":7000"
mode: debug
content_file: ./content.yaml
background: false
analytics:
  enabled: false
`), 0644))

	cfg, found, err := Load(New(), path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, "./content.yaml", cfg.ContentFile)
	assert.False(t, cfg.Background)
	assert.False(t, cfg.Analytics.Enabled)
}

func TestLoad_PrefixedEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: debug\n"), 0644))
	t.Setenv("PORTFOLIO_MODE", "test")

	cfg, _, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Mode)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_MODE", "production")
	_, _, err := Load(New(), "")
	assert.ErrorContains(t, err, "invalid mode")
}
