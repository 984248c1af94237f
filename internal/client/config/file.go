package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dmitrijs2005/resumerag/internal/flagx"
	"github.com/dmitrijs2005/resumerag/internal/timex"
)

// FileConfig is the DTO decoded from a JSON or TOML config file. Only
// non-zero values are copied into Config.
type FileConfig struct {
	ServerURL      string         `json:"server_url" toml:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout" toml:"request_timeout"`
	DBPath         string         `json:"db_path" toml:"db_path"`
	LogFormat      string         `json:"log_format" toml:"log_format"`
	LogLevel       string         `json:"log_level" toml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config in args.
// Without the flag nothing happens. Read, decode and unknown-extension
// errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	fc, err := decodeFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func decodeFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file %s (want .json or .toml)", path)
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
