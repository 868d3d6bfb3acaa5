package config

import "time"

// Config holds runtime settings for the uploader CLI.
//
// Fields:
//   - StatePath: path of the local SQLite state database (credential
//     overrides, mode flags). Empty means a default under the user config dir.
//   - UploadsDSN: PostgreSQL DSN of the marketplace uploads backend. Empty
//     disables durable tracking; uploads still score points.
//   - AuthToken: marketplace-issued JWT identifying the contributor.
//   - UploadPath: object key prefix for uploaded files.
//   - ProbeStepTimeout: per-step bound for connectivity probe calls.
type Config struct {
	StatePath        string
	UploadsDSN       string
	AuthToken        string
	UploadPath       string
	ProbeStepTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StatePath = ""
	c.UploadsDSN = ""
	c.AuthToken = ""
	c.UploadPath = "uploads"
	c.ProbeStepTimeout = 10 * time.Second
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
