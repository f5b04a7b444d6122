package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workout-tracker/internal/config"
)

const testYAML = `server:
  host: 127.0.0.1
  port: 8000
  mode: debug
database:
  host: db.local
  port: 5432
  user: workout
  password: pw
  dbname: workout_tracker
  sslmode: disable
redis:
  host: cache.local
  port: 6379
session:
  secret: s3cret
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0644))
	return path
}

func TestLoadFromYAML(t *testing.T) {
	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Session.Secret)

	// Defaults fill what the file omits.
	assert.Equal(t, "workout_session", cfg.Session.CookieName)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, "plain", cfg.Auth.PasswordScheme)
}

func TestEnvOverridesYAML(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("PASSWORD_SCHEME", "bcrypt")

	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordScheme)
}

func TestDSN(t *testing.T) {
	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.local port=5432 user=workout password=pw dbname=workout_tracker sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
