// Package config loads runtime configuration for the Drezzle CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   data directory for the local store
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// Interval fields are integer seconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "request_timeout_seconds": 12,
//	  "data_dir": ".",
//	  "online_check_interval_seconds": 30
//	}
//
// Primary API
//
//   - type Config                     — holds the base URL, timeouts and data dir
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
