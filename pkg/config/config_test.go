package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("GROUPS_MAX_NAME_LENGTH", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, 255, cfg.Groups.MaxNameLength)
	assert.True(t, cfg.Groups.AtomicCreate)
	assert.Equal(t, 30*time.Second, cfg.Groups.SettingsCacheTTL)
	assert.Contains(t, cfg.Database.DSN(), "dbname=nodebb")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "SQL")
	t.Setenv("DATABASE_URL", "file:groups.db")
	t.Setenv("GROUPS_MAX_NAME_LENGTH", "64")
	t.Setenv("GROUPS_ATOMIC_CREATE", "off")
	t.Setenv("SETTINGS_CACHE_TTL", "2m")
	t.Setenv("APP_ALLOWED_ORIGINS", "https://a.example; https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSQL, cfg.StoreBackend)
	assert.Equal(t, "file:groups.db", cfg.Database.DSN())
	assert.Equal(t, 64, cfg.Groups.MaxNameLength)
	assert.False(t, cfg.Groups.AtomicCreate)
	assert.Equal(t, 2*time.Minute, cfg.Groups.SettingsCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_BACKEND")
}
