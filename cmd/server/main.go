package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gempundit/gemreport/internal/config"
	"github.com/gempundit/gemreport/internal/feed"
	"github.com/gempundit/gemreport/internal/logging"
	"github.com/gempundit/gemreport/internal/report"
	"github.com/gempundit/gemreport/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"feed_url", cfg.Feed.URL,
		"cache_ttl", cfg.Feed.CacheTTL,
		"page_size", cfg.Report.PageSize,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Feed client with TTL cache; the first dashboard request triggers the
	// initial fetch.
	feedClient := feed.New(feed.Options{
		URL:         cfg.Feed.URL,
		Username:    cfg.Feed.Username,
		Password:    cfg.Feed.Password,
		UserAgent:   cfg.Feed.UserAgent,
		Timeout:     cfg.Feed.Timeout,
		CacheTTL:    cfg.Feed.CacheTTL,
		MaxBodySize: cfg.Feed.MaxBodySize,
	})

	sessions := report.NewStore()

	server := web.NewServer(cfg, feedClient, sessions)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
