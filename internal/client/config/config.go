package config

import "time"

// Config holds runtime settings for the Drezzle CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend REST API.
//   - RequestTimeout: transport-level timeout applied to every request.
//   - DataDir: directory holding the local sqlite store.
//   - OnlineCheckInterval: how often the client probes backend reachability.
type Config struct {
	ServerBaseURL       string
	RequestTimeout      time.Duration
	DataDir             string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 12 * time.Second
	c.DataDir = "."
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
