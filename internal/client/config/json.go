package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/snipshare/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given as strings understood by time.ParseDuration ("15s", "1m").
type JsonConfig struct {
	ServerBaseURL  string `json:"server_base_url"`
	RequestTimeout string `json:"request_timeout"`
	DatabasePath   string `json:"database_path"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. When no file is given it is a no-op. Read and
// parse errors panic; configuration is unusable without them and the
// process has barely started.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
