package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, CACHE_TTL_MS_DEFAULT, cfg.CacheTTLMS)
	assert.Equal(t, HTTP_PORT_DEFAULT, cfg.HTTPPort)
	assert.Equal(t, TIME_ZONE_DEFAULT, cfg.TimeZone)
	assert.NotEmpty(t, cfg.StationsAPIBaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RB_CACHE_TTL_MS", "1500")
	t.Setenv("RB_STATIONS_API_URL", "https://example.org/stations")
	t.Setenv("RB_TIME_ZONE", "Europe/Berlin")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1500, cfg.CacheTTLMS)
	assert.Equal(t, "https://example.org/stations", cfg.StationsAPIBaseURL)
	assert.Equal(t, "Europe/Berlin", cfg.TimeZone)
}

func TestLoad_RejectsInvalidURL(t *testing.T) {
	t.Setenv("RB_STATIONS_API_URL", "not a url")

	_, err := Load()
	assert.Error(t, err)
}
