// Package config loads runtime settings for the link-storage client.
// Sources are applied in order: built-in defaults, then a JSON file
// (when -c/-config points at one), then command-line flags.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend (the /api/v1 prefix
//     is appended by the HTTP client).
//   - RequestTimeout: end-to-end bound applied to every API call.
//   - SessionDBPath: path of the local SQLite session database.
//   - PageSize: default page size for link-group listings.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SessionDBPath  string
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "session.db"
	c.PageSize = 30
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
