package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is folded in first; a missing file is not an error.
//
// Variables:
//
//	POETRY_API_URL          base URL of the backend API
//	POETRY_REQUEST_TIMEOUT  per-request deadline, e.g. "10s"
//	POETRY_STATE_DB         path of the local state database
//	POETRY_PAGE_SIZE        list view page size
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("POETRY_API_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("POETRY_REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v, ok := os.LookupEnv("POETRY_STATE_DB"); ok && v != "" {
		cfg.StateDBPath = v
	}
	if v, ok := os.LookupEnv("POETRY_PAGE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}
