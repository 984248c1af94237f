// Package config loads runtime configuration for the resumerag CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, then RESUMERAG_* variables.
//  3. Optional config file selected with -c or -config (.json or .toml).
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json, zerolog)
//
// Environment
//
//	RESUMERAG_SERVER_URL, RESUMERAG_REQUEST_TIMEOUT ("30s"),
//	RESUMERAG_DB_PATH, RESUMERAG_LOG_LEVEL, RESUMERAG_LOG_FORMAT
//
// # File schema
//
// Durations are strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "db_path": "/home/me/.resumerag/session.db",
//	  "log_level": "debug"
//	}
//
// The same keys are used in TOML files.
package config
