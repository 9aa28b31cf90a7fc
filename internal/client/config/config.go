// Package config loads runtime settings for the SnipShare CLI.
package config

import "time"

// Config holds runtime settings for the SnipShare CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the snipserve HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabasePath: path of the local sqlite database (drafts).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "snipshare.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), the environment, and finally
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
