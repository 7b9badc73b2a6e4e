package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "gamecatalog.db", cfg.DatabaseURL)
	assert.Equal(t, "preferences.json", cfg.PreferencesFile)
	assert.Equal(t, 0, cfg.DefaultReleaseYear)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadReadsDotEnvAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	dotenv := "PORT=9090\nDATABASE_URL=catalog.db\nDEFAULT_RELEASE_YEAR=2024\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600))

	t.Setenv("DATABASE_URL", "override.db")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "override.db", cfg.DatabaseURL)
	assert.Equal(t, 2024, cfg.DefaultReleaseYear)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadRequiresSecretWhenAuthEnabled(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(t.TempDir())
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "secret")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled())
}
