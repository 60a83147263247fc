package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvWithoutFile(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("GRPC_PORT", ":6000")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, ":6000", cfg.GRPCPort)
	assert.Equal(t, "postgres", cfg.DBType)
}

func TestLoadConfigReadsAppEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("DB_TYPE=sqlite\nDB_PATH=data/users.db\n"), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database().Type)
	assert.Equal(t, "data/users.db", cfg.Database().Path)
	assert.Equal(t, ":50052", cfg.GRPCPort)
}
