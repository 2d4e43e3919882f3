// Package main is the entrypoint for the userecho API server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/userecho/userecho/internal/config"
	"github.com/userecho/userecho/internal/logging"
	"github.com/userecho/userecho/internal/metrics"
	"github.com/userecho/userecho/internal/server"
)

const serviceName = "userecho"

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, flushLogs, err := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel, serviceName)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// Initialize metrics
	var (
		recorder       metrics.Recorder = metrics.NewNoop()
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		prom := metrics.NewPrometheus()
		recorder = prom
		metricsHandler = prom.Handler()
	}

	r := server.NewRouter(server.RouterConfig{
		Logger:         logger,
		Production:     cfg.IsProduction(),
		RequestTimeout: cfg.RequestTimeout,
		MaxBodySize:    cfg.MaxRequestBodySize,
		CORSOrigins:    cfg.GetCORSAllowedOrigins(),
		Metrics:        recorder,
		MetricsHandler: metricsHandler,
	})

	srv := server.New(r, server.Options{
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)
	srv.OnShutdown("logger", server.ShutdownFunc(flushLogs))

	logger.Info("starting server",
		"port", cfg.Port,
		"env", cfg.AppEnv,
		"log_format", cfg.LogFormat,
		"metrics_enabled", cfg.MetricsEnabled,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
