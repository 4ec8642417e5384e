// Package config handles configuration for the storefront client,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote storefront API, e.g. "http://127.0.0.1:8000".
//     All endpoint paths (/api/products, /api/cart, ...) are resolved against it.
//   - RequestTimeout: upper bound for a single HTTP request. An expired
//     request surfaces as an ordinary fetch failure.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
}

// EnvAPIBaseURL is the environment variable overriding the API base URL.
const EnvAPIBaseURL = "STOREFRONT_API_URL"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
}
