package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Feed.URL == "" {
		t.Error("Feed.URL default is empty")
	}
	if cfg.Feed.CacheTTL != time.Hour {
		t.Errorf("Feed.CacheTTL = %s, want %s", cfg.Feed.CacheTTL, time.Hour)
	}
	if cfg.Feed.MaxBodySize != 268435456 {
		t.Errorf("Feed.MaxBodySize = %d, want %d", cfg.Feed.MaxBodySize, 268435456)
	}
	if cfg.Report.PageSize != 48 {
		t.Errorf("Report.PageSize = %d, want %d", cfg.Report.PageSize, 48)
	}
	if cfg.Report.CardsPerRow != 4 {
		t.Errorf("Report.CardsPerRow = %d, want %d", cfg.Report.CardsPerRow, 4)
	}
	if !cfg.Report.RequireGemstone {
		t.Error("Report.RequireGemstone = false, want true")
	}
	if cfg.Rate.RequestsPerMinute != 120 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 120)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REPORT_PAGE_SIZE", "24")
	os.Setenv("REPORT_REQUIRE_GEMSTONE", "false")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("REPORT_PAGE_SIZE")
		os.Unsetenv("REPORT_REQUIRE_GEMSTONE")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Report.PageSize != 24 {
		t.Errorf("Report.PageSize = %d, want %d", cfg.Report.PageSize, 24)
	}
	if cfg.Report.RequireGemstone {
		t.Error("Report.RequireGemstone = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_Durations(t *testing.T) {
	os.Setenv("FEED_TIMEOUT", "45s")
	os.Setenv("FEED_CACHE_TTL", "30m")
	os.Setenv("SERVER_SHUTDOWN_TIMEOUT", "10s")
	defer func() {
		os.Unsetenv("FEED_TIMEOUT")
		os.Unsetenv("FEED_CACHE_TTL")
		os.Unsetenv("SERVER_SHUTDOWN_TIMEOUT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Feed.Timeout != 45*time.Second {
		t.Errorf("Feed.Timeout = %s, want %s", cfg.Feed.Timeout, 45*time.Second)
	}
	if cfg.Feed.CacheTTL != 30*time.Minute {
		t.Errorf("Feed.CacheTTL = %s, want %s", cfg.Feed.CacheTTL, 30*time.Minute)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %s, want %s", cfg.Server.ShutdownTimeout, 10*time.Second)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid port", "SERVER_PORT", "not-a-number"},
		{"port out of range", "SERVER_PORT", "99999"},
		{"invalid duration", "FEED_TIMEOUT", "5 minutes"},
		{"relative feed URL", "FEED_URL", "/var/export/report.csv"},
		{"zero page size", "REPORT_PAGE_SIZE", "0"},
		{"invalid log level", "LOG_LEVEL", "verbose"},
		{"invalid log format", "LOG_FORMAT", "xml"},
		{"invalid bool", "RATE_LIMIT_ENABLED", "yes please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(tt.key, tt.value)
			defer os.Unsetenv(tt.key)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q: expected error, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 0
	cfg.Feed.URL = ""
	cfg.Logging.Level = "nope"
	cfg.Logging.Format = "nope"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	msg := err.Error()
	for _, want := range []string{"SERVER_PORT", "FEED_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error missing %s: %s", want, msg)
		}
	}
}

func TestConfig_StringMasksPassword(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := cfg.String()
	if strings.Contains(s, cfg.Feed.Password) {
		t.Error("String() leaks the feed password")
	}
	if !strings.Contains(s, "[MASKED]") {
		t.Errorf("String() = %q, want masked password marker", s)
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9090, ":9090"},
		{"localhost", 80, "localhost:80"},
	}

	for _, tt := range tests {
		c := ServerConfig{Host: tt.host, Port: tt.port}
		if got := c.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}
