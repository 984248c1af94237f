// Package config handles configuration for the stub backend, including
// defaults, a JSON or TOML file overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the stub backend.
//
// Fields:
//   - Addr: HTTP bind address.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenValidity: lifetime of issued tokens.
//   - FixturesPath: TOML file with canned search results; empty means none.
//   - MaxUploadSize: largest accepted resume, in bytes.
//   - GinMode: gin.DebugMode, gin.ReleaseMode or gin.TestMode.
//   - LogFormat / LogLevel: see logging.New.
type Config struct {
	Addr          string
	SecretKey     string
	TokenValidity time.Duration
	FixturesPath  string
	MaxUploadSize int64
	GinMode       string
	LogFormat     string
	LogLevel      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidity = 60 * time.Minute
	c.FixturesPath = ""
	c.MaxUploadSize = 10 << 20
	c.GinMode = "release"
	c.LogFormat = "json"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from os.Args.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then the file named by -c/-config, then flags.
// Malformed input panics.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
