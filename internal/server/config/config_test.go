package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 60*time.Minute, c.TokenValidity)
	assert.Empty(t, c.FixturesPath)
	assert.Equal(t, int64(10<<20), c.MaxUploadSize)
	assert.Equal(t, "release", c.GinMode)
}

func TestLoad_NoArgs(t *testing.T) {
	c := Load(nil)
	require.NotNil(t, c)
	if diff := cmp.Diff(defaults(), c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempFile(t, "stub.toml", `
addr = ":9000"
secret_key = "from-file"
token_validity = "5m"
fixtures_path = "fixtures.toml"
gin_mode = "debug"
`)

	c := Load([]string{"-c", path, "-s", "from-flag", "-unknown", "x"})

	want := defaults()
	want.Addr = ":9000"
	want.SecretKey = "from-flag"
	want.TokenValidity = 5 * time.Minute
	want.FixturesPath = "fixtures.toml"
	want.GinMode = "debug"

	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "stub.json", `{"addr":"127.0.0.1:1","token_validity":60000000000,"max_upload_size":1024}`)

	c := defaults()
	parseFile(c, []string{"-config", path})

	assert.Equal(t, "127.0.0.1:1", c.Addr)
	assert.Equal(t, time.Minute, c.TokenValidity)
	assert.Equal(t, int64(1024), c.MaxUploadSize)
	assert.Equal(t, "secretKey", c.SecretKey)
}

func TestParseFile_Panics(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json")},
		{"bad json", writeTempFile(t, "bad.json", `{"addr":`)},
		{"bad toml", writeTempFile(t, "bad.toml", `addr = `)},
		{"unknown extension", writeTempFile(t, "stub.yaml", `addr: x`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { parseFile(defaults(), []string{"-c", tt.path}) })
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-s", "secret", "-t", "15", "-f", "fx.toml", "-l", "debug"},
			expected: func() *Config {
				c := defaults()
				c.Addr = "127.0.0.1:9090"
				c.SecretKey = "secret"
				c.TokenValidity = 15 * time.Minute
				c.FixturesPath = "fx.toml"
				c.LogLevel = "debug"
				return c
			}(),
		},
		{
			name:     "no flags keep values",
			args:     []string{},
			expected: defaults(),
		},
		{
			name:        "bad int",
			args:        []string{"-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			if tt.expectPanic {
				assert.Panics(t, func() { parseFlags(c, tt.args) })
				return
			}
			parseFlags(c, tt.args)
			if diff := cmp.Diff(tt.expected, c); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
