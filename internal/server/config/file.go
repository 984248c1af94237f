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

// FileConfig is the DTO decoded from a config file. TokenValidity accepts
// "30m" style strings or integer nanoseconds.
type FileConfig struct {
	Addr          string         `json:"addr" toml:"addr"`
	SecretKey     string         `json:"secret_key" toml:"secret_key"`
	TokenValidity timex.Duration `json:"token_validity" toml:"token_validity"`
	FixturesPath  string         `json:"fixtures_path" toml:"fixtures_path"`
	MaxUploadSize int64          `json:"max_upload_size" toml:"max_upload_size"`
	GinMode       string         `json:"gin_mode" toml:"gin_mode"`
	LogFormat     string         `json:"log_format" toml:"log_format"`
	LogLevel      string         `json:"log_level" toml:"log_level"`
}

func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".toml":
		_, err = toml.Decode(string(data), &fc)
	default:
		err = fmt.Errorf("unsupported config file %s (want .json or .toml)", path)
	}
	if err != nil {
		panic(err)
	}

	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.SecretKey != "" {
		cfg.SecretKey = fc.SecretKey
	}
	if fc.TokenValidity.Duration != 0 {
		cfg.TokenValidity = fc.TokenValidity.Duration
	}
	if fc.FixturesPath != "" {
		cfg.FixturesPath = fc.FixturesPath
	}
	if fc.MaxUploadSize != 0 {
		cfg.MaxUploadSize = fc.MaxUploadSize
	}
	if fc.GinMode != "" {
		cfg.GinMode = fc.GinMode
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
