package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"kcet-predictor/catalog"
	"kcet-predictor/config"
	"kcet-predictor/engine"
	"kcet-predictor/metrics"
	"kcet-predictor/web"
)

func main() {
	ctx := context.Background()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	// The catalog is built once and read-only for the process lifetime.
	cat, err := catalog.Load(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load cutoff catalog", zap.Error(err))
	}
	logger.Info("Catalog ready",
		zap.Int("records", cat.Len()),
		zap.Strings("years", cat.Years()))

	matchEngine := engine.New(cfg, cat, logger)
	m := metrics.New()

	// Initialize web server
	webServer := web.NewServer(matchEngine, cat, m, logger, cfg)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start web server
	port := fmt.Sprintf(":%d", cfg.WebPort)
	logger.Info("Starting KCET predictor web server", zap.String("port", port))
	if err := webServer.Start(ctx, port); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}
