package config

import (
	"os"
	"time"
)

// DefaultServerURL is the hosted ResumeRAG backend.
const DefaultServerURL = "https://resumeragbackend.onrender.com"

// Config holds runtime settings for the resumerag CLI.
//
// Fields:
//   - ServerURL: base URL of the backend; endpoint paths are appended to it.
//   - RequestTimeout: upper bound for a single HTTP exchange.
//   - DBPath: SQLite file holding the persisted session.
//   - LogFormat / LogLevel: see logging.New.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	DBPath         string
	LogFormat      string
	LogLevel       string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = DefaultServerURL
	c.RequestTimeout = 30 * time.Second
	c.DBPath = "resumerag.db"
	c.LogFormat = "text"
	c.LogLevel = "warn"
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig() *Config {
	loadDotEnv(".env")
	return Load(os.Args[1:], os.LookupEnv)
}

// Load applies defaults, then environment variables, then the config file
// named by -c/-config, then flags. Later sources take precedence.
// Malformed input panics; callers run this once at start-up.
func Load(args []string, lookup func(string) (string, bool)) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, lookup)
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
