package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 50, cfg.GuestLimit)
	assert.Equal(t, StorageFile, cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.DataDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("GUEST_DATA_LIMIT", "10")
	t.Setenv("DATA_DIR", "/tmp/skillviz")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10, cfg.GuestLimit)
	assert.Equal(t, "/tmp/skillviz", cfg.Storage.DataDir)
}

func TestLoadNeo4jBackendRequiresCredentials(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "neo4j")
	t.Setenv("NEO4J_URI", "")
	t.Setenv("NEO4J_USERNAME", "")
	t.Setenv("NEO4J_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEO4J_URI")
	assert.Contains(t, err.Error(), "NEO4J_USERNAME")
	assert.Contains(t, err.Error(), "NEO4J_PASSWORD")
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "dynamo")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNegativeGuestLimit(t *testing.T) {
	t.Setenv("GUEST_DATA_LIMIT", "-5")

	_, err := Load()
	require.Error(t, err)
}
