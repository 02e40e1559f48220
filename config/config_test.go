package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{
		"http://localhost:5173",
		"https://wallet-dev.frontiertower.io",
		"https://wallet-staging.frontiertower.io",
		"https://wallet-preview.frontiertower.io",
		"https://wallet.frontiertower.io",
	}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout.Std())
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load([]byte(`
app_name: demo
call_timeout: 5s
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.AppName)
	assert.Equal(t, 5*time.Second, cfg.CallTimeout.Std())
	// Unset fields keep their defaults.
	assert.Len(t, cfg.AllowedOrigins, 5)
}

func TestLoadReplacesOrigins(t *testing.T) {
	cfg, err := Load([]byte(`
allowed_origins:
  - http://localhost:9999
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:9999"}, cfg.AllowedOrigins)
}

func TestLoadRejectsEmptyOrigins(t *testing.T) {
	_, err := Load([]byte(`allowed_origins: []`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AllowedOrigins")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	_, err := Load([]byte(`call_timeout: soon`))
	require.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load([]byte(`{`))
	require.Error(t, err)
}

func TestOriginsReturnsCopy(t *testing.T) {
	cfg := Default()
	origins := cfg.Origins()
	origins[0] = "https://tampered.example"
	assert.Equal(t, "http://localhost:5173", cfg.AllowedOrigins[0])
}
