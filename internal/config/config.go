// Package config holds runtime settings for the gestock CLI and the
// layered loading logic: defaults, then JSON file, then environment
// (including a local .env), then command-line flags. Later sources take
// precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the gestock client.
//
// Fields:
//   - BaseURL: root of the backend REST API, e.g. "http://localhost:8000/api".
//   - RequestTimeout: per-request budget, the refresh exchange included.
//   - RetryCount: max automatic retries for transient list-fetch failures.
//   - PageSize: default page_size sent with list requests.
//   - LogLevel: zerolog level name ("debug", "info", "warn", "error").
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	RetryCount     int
	PageSize       int
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.RetryCount = 3
	c.PageSize = 20
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
