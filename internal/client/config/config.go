// Package config loads runtime settings for the poetry CLI. Values are
// layered: defaults, then the environment (including a local .env file),
// then command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the poetry CLI.
//
// Fields:
//   - APIBaseURL: base URL of the poetry backend REST API.
//   - RequestTimeout: per-request deadline; a hung request is cut off here.
//   - StateDBPath: sqlite file holding the session and the poem draft.
//   - PageSize: items per page in list views.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateDBPath    string
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.StateDBPath = "poetry.db"
	c.PageSize = 6
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
