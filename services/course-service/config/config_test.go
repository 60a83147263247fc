package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "static", cfg.CatalogSource)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, ":50053", cfg.GRPCPort)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "database")
	t.Setenv("SEED_ON_START", "true")
	t.Setenv("USER_SVC_URL", "user-service:50052")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "database", cfg.CatalogSource)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, "user-service:50052", cfg.UserSvcUrl)
}
