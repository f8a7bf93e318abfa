package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"icongallery/internal/catalog"
	"icongallery/internal/config"
	"icongallery/internal/http"
	"icongallery/internal/service"
	"icongallery/internal/storage"
	"icongallery/internal/tokens"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	loadRepo := storage.NewLoadRepo(db)
	fetcher := tokens.NewFetcher(cfg.TokensURL, cfg.TokensRootPath, cfg.FetchTimeout)
	iconCatalog := catalog.New(fetcher, loadRepo, cfg.SnapshotRetain)

	// Serve the last stored load until the first fetch completes
	if err := iconCatalog.Restore(ctx); err != nil {
		slog.Warn("Failed to restore stored icon load", "error", err)
	}

	iconService := service.NewIconService(iconCatalog)

	router := http.NewRouter(&http.Deps{
		IconService: iconService,
	})

	// Fetch the token document in background after router is ready
	go func() {
		slog.Info("Loading icon tokens", "url", cfg.TokensURL, "root_path", cfg.TokensRootPath)
		if err := iconService.Reload(ctx); err != nil {
			slog.Error("Initial icon load failed", "error", err)
		}
	}()

	// Start API server
	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}
