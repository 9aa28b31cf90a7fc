package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config from the environment. A .env file in the
// working directory is merged first (missing file is fine), then process
// variables:
//
//	SNIPSHARE_SERVER_URL       base URL of the API
//	SNIPSHARE_REQUEST_TIMEOUT  duration string, e.g. "30s"
//	SNIPSHARE_DB_PATH          local sqlite path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SNIPSHARE_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("SNIPSHARE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("SNIPSHARE_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
