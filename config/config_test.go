package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointConfigFileAway keeps tests from picking up a stray config.yaml in the
// working directory.
func pointConfigFileAway(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoad_Defaults(t *testing.T) {
	pointConfigFileAway(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "car", cfg.DBUser)
	assert.Equal(t, "test", cfg.DBPassword)
	assert.Equal(t, "car_db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_Environment(t *testing.T) {
	pointConfigFileAway(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "inventory")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "inventory_db")
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "inventory", cfg.DBUser)
	assert.Equal(t, "hunter2", cfg.DBPassword)
	assert.Equal(t, "inventory_db", cfg.DBName)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_FileOverridesEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_host: file.internal\ndb_name: file_db\n"), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_HOST", "env.internal")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()

	// File values win; fields the file omits keep the env/default values.
	assert.Equal(t, "file.internal", cfg.DBHost)
	assert.Equal(t, "file_db", cfg.DBName)
	assert.Equal(t, "envuser", cfg.DBUser)
	assert.Equal(t, "test", cfg.DBPassword)
}

func TestLoad_MalformedFileIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_host: [unclosed"), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_HOST", "env.internal")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "env.internal", cfg.DBHost)
	assert.Equal(t, "car_db", cfg.DBName)
}
