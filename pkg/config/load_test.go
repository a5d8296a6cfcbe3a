package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_API_KEY", "SECRETKEY123")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.False(t, cfg.Server.UseTLS)
	assert.Equal(t, "SECRETKEY123", cfg.Auth.APIKey)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("AUTH_API_KEY", "placeholder") // register restore
	require.NoError(t, os.Unsetenv("AUTH_API_KEY"))

	_, err := Load("does-not-exist.env")
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_API_KEY", "SECRETKEY123")
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_PORT", "8443")
	t.Setenv("SERVER_USE_TLS", "true")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8443, cfg.Server.Port)
	assert.True(t, cfg.Server.UseTLS)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "SE****Y123", maskValue("SECRETKEY123"))
}
