package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "localhost:50053", cfg.CourseSvcUrl)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Origins())
}

func TestOriginsFromEnv(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://strongfoundations.church, https://www.strongfoundations.church,")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://strongfoundations.church", "https://www.strongfoundations.church"}, cfg.Origins())
	assert.True(t, cfg.CookieSecure)
}
