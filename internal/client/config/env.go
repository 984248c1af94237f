package config

import (
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "RESUMERAG_"

// loadDotEnv exports variables from path into the process environment.
// A missing file is not an error; variables already set are kept.
func loadDotEnv(path string) {
	_ = godotenv.Load(path)
}

// parseEnv overlays cfg with RESUMERAG_* variables found through lookup.
// An unparsable timeout panics.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(envPrefix + "SERVER_URL"); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := lookup(envPrefix + "REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(envPrefix + "DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
}
