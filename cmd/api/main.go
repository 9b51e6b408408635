package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"residash.io/internal/app"
	"residash.io/internal/appconf"
	"residash.io/internal/logging"
	"residash.io/internal/restapi"
	"residash.io/internal/telemetry"
	"residash.io/internal/webui"
)

func main() {
	var (
		port         int
		envFlag      string
		apiKeysFlag  string
		rateLimit    int
		csvSource    string
		dbPath       string
		refreshEvery time.Duration
		verbose      bool
	)

	flag.IntVar(&port, "port", 8501, "Dashboard server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test,web", "Comma separated API keys")
	flag.IntVar(&rateLimit, "rate-limit", 100, "Requests per second per API key (negative disables)")
	flag.StringVar(&csvSource, "csv", "sample_residency_patterns.csv", "Residency CSV path or http(s) URL")
	flag.StringVar(&dbPath, "db", ":memory:", "SQLite working copy path")
	flag.DurationVar(&refreshEvery, "refresh", 0, "Refresh interval for URL sources (0 disables)")
	flag.BoolVar(&verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	cfg := appconf.Config{
		Port:      port,
		Env:       appconf.EnvFlagToEnvironment(envFlag),
		RateLimit: rateLimit,
		Verbose:   verbose,
	}
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	telemetryConfig := telemetry.Config{
		Source:          csvSource,
		DBPath:          dbPath,
		Env:             cfg.Env,
		RefreshInterval: refreshEvery,
		Verbose:         cfg.Verbose,
	}

	manager, err := telemetry.InitManager(telemetryConfig, logger)
	if err != nil {
		logging.LogError(logger, "failed to load residency telemetry", err, slog.String("source", csvSource))
		os.Exit(1)
	}
	defer manager.Shutdown()

	manager.LogStatistics()

	application := &app.Application{
		Config:           cfg,
		TelemetryConfig:  telemetryConfig,
		Logger:           logger,
		TelemetryManager: manager,
	}

	api := restapi.NewRestAPI(application)
	ui := webui.NewWebUI(application)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.Handler())
	ui.SetWebUIRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down server", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logging.LogError(logger, "server failed", err)
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logging.LogError(logger, "graceful shutdown failed", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
