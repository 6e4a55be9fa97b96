// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server  ServerConfig
	Feed    FeedConfig
	Report  ReportConfig
	Rate    RateLimitConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 5m,
	// large enough for a full CSV export on a slow link)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"5m"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 3m,
	// a cold fetch of the export can take a while)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"3m"`

	// TrustedProxies is a comma-separated list of proxy IPs or CIDRs whose
	// X-Real-IP / X-Forwarded-For headers are trusted (default: loopback)
	TrustedProxies string `env:"SERVER_TRUSTED_PROXIES" default:"127.0.0.1,::1"`
}

// FeedConfig holds catalog export fetch settings.
type FeedConfig struct {
	// URL of the CSV export endpoint.
	URL string `env:"FEED_URL" default:"https://staging.gempundit.com/var/export/report.csv"`

	// Username and Password for HTTP basic auth on the export endpoint.
	// Leaving both empty disables auth.
	Username string `env:"FEED_USERNAME" default:"pawan"`
	Password string `env:"FEED_PASSWORD" default:"LG65kcHz"`

	// UserAgent overrides the built-in browser user agent when non-empty.
	UserAgent string `env:"FEED_USER_AGENT"`

	// Timeout bounds a single fetch (default: 2m)
	Timeout time.Duration `env:"FEED_TIMEOUT" default:"2m"`

	// CacheTTL is how long a fetched export stays valid (default: 1h)
	CacheTTL time.Duration `env:"FEED_CACHE_TTL" default:"1h"`

	// MaxBodySize caps the export body in bytes (default: 256MB)
	MaxBodySize int64 `env:"FEED_MAX_BODY_SIZE" default:"268435456"`
}

// ReportConfig holds dashboard behavior settings.
type ReportConfig struct {
	// PageSize is the grid page size (default: 48)
	PageSize int `env:"REPORT_PAGE_SIZE" default:"48"`

	// CardsPerRow is the grid row width (default: 4)
	CardsPerRow int `env:"REPORT_CARDS_PER_ROW" default:"4"`

	// RequireGemstone blocks the report until at least one gemstone is
	// selected (default: true)
	RequireGemstone bool `env:"REPORT_REQUIRE_GEMSTONE" default:"true"`

	// ColourColumn overrides colour column auto-detection. When empty the
	// feed is probed for j_colour, then color; if neither exists the colour
	// filter is skipped.
	ColourColumn string `env:"REPORT_COLOUR_COLUMN"`
}

// RateLimitConfig holds rate limiting settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the sustained per-IP rate (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`

	// Burst is the per-IP burst allowance (default: 30)
	Burst int `env:"RATE_LIMIT_BURST" default:"30"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
