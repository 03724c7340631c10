package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/drezzle/drezzle-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Interval
// fields are integer seconds; after parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL       string `json:"server_base_url"`
	RequestTimeout      int    `json:"request_timeout_seconds"`
	DataDir             string `json:"data_dir"`
	OnlineCheckInterval int    `json:"online_check_interval_seconds"`
}

// parseJson overlays Config with values loaded from a JSON file given via
// the -c or -config flags. Absent file: nothing happens. Read or parse
// errors panic; intended usage is defaults -> parseJson -> parseFlags,
// where later stages override earlier ones.
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
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.OnlineCheckInterval > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval) * time.Second
	}
}
