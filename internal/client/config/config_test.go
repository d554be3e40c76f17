package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "poetry.db", cfg.StateDBPath)
	require.Equal(t, 6, cfg.PageSize)
}

func TestParseEnvOverlaysDefaults(t *testing.T) {
	t.Setenv("POETRY_API_URL", "https://poetry.example.com/api")
	t.Setenv("POETRY_REQUEST_TIMEOUT", "3s")
	t.Setenv("POETRY_PAGE_SIZE", "10")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "https://poetry.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, 10, cfg.PageSize)
	require.Equal(t, "poetry.db", cfg.StateDBPath)
}

func TestParseEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("POETRY_REQUEST_TIMEOUT", "soon")
	t.Setenv("POETRY_PAGE_SIZE", "-4")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 6, cfg.PageSize)
}
