package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:3001", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.Timeout)
	assert.False(t, cfg.API.UseMock)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("API_TIMEOUT", "30")
	t.Setenv("USE_MOCK_API", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.API.Timeout)
	assert.True(t, cfg.API.UseMock)
}

func TestValidateRejectsMockInProduction(t *testing.T) {
	cfg := &Config{
		Environment: "production",
		API:         APIConfig{BaseURL: "http://api", UseMock: true},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresBaseURL(t *testing.T) {
	cfg := &Config{
		Environment: "development",
		API:         APIConfig{BaseURL: "", UseMock: false},
	}
	assert.Error(t, cfg.Validate())

	cfg.API.UseMock = true
	assert.NoError(t, cfg.Validate())
}
