package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 5
database:
  host: db.internal
  username: academy
  database: academy
auth:
  jwtSecret: test-secret
referral:
  commissionSource: settings
followup:
  maxAttempts: 5
  retryDelay: 50
`

func withConfigDir(t *testing.T, name, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))

	previous := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = previous })
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("AA_ENV", "test")
	withConfigDir(t, "test", testYAML)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, time.Hour, cfg.FXRate.CacheTTL)
	assert.Equal(t, "settings", cfg.Referral.CommissionSource)
	assert.Equal(t, 5, cfg.FollowUp.MaxAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.FollowUp.RetryDelay)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AA_ENV", "test")
	t.Setenv("AA_DB_PASSWORD", "from-env")
	t.Setenv("AA_SERVER_PORT", "7070")
	t.Setenv("AA_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	withConfigDir(t, "test", testYAML)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Run("Missing JWT secret", func(t *testing.T) {
		t.Setenv("AA_ENV", "test")
		withConfigDir(t, "test", "server:\n  port: 8080\n")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "jwtSecret")
	})

	t.Run("Short secret in production", func(t *testing.T) {
		t.Setenv("AA_ENV", "production")
		withConfigDir(t, "production", "auth:\n  jwtSecret: short\n")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "32 characters")
	})

	t.Run("Unknown commission source", func(t *testing.T) {
		t.Setenv("AA_ENV", "test")
		withConfigDir(t, "test", "auth:\n  jwtSecret: s\nreferral:\n  commissionSource: random\n")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "commissionSource")
	})

	t.Run("Missing file", func(t *testing.T) {
		t.Setenv("AA_ENV", "staging")
		withConfigDir(t, "test", testYAML)

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "error reading config file")
	})
}
