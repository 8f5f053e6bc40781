// Package main is the entry point for the storekeep API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"storekeep/internal/config"
	v1 "storekeep/internal/infrastructure/http/v1"
	"storekeep/internal/infrastructure/numerator"
	"storekeep/internal/infrastructure/storage/postgres"
	"storekeep/pkg/logger"
	"storekeep/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Development: cfg.App.IsDev(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	defer logger.SetDefault(log)()
	ctx := logger.WithLogger(context.Background(), log)
	log.Infow("starting storekeep server", "env", cfg.App.Env, "version", cfg.App.Version)

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DSN:               cfg.DB.DSN,
		MaxConns:          cfg.DB.MaxConns,
		MinConns:          cfg.DB.MinConns,
		MaxConnLifetime:   cfg.DB.MaxConnLifetime,
		MaxConnIdleTime:   cfg.DB.MaxConnIdleTime,
		HealthCheckPeriod: cfg.DB.HealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()

	if cfg.Migrate.AutoRun {
		if err := postgres.Migrate(ctx, postgres.OpenSQL(pool), postgres.MigrateUp, ""); err != nil {
			logger.Fatal(ctx, "failed to apply migrations", "error", err)
		}
		log.Info("migrations applied")
	}

	txOpts := postgres.DefaultTxOptions()
	txOpts.StatementTimeout = cfg.DB.TxTimeout
	txManager := postgres.NewTxManager(pool, txOpts)

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// --- Services ---
	sequencer := numerator.New(txManager, m)
	services := v1.NewServices(txManager, txManager, sequencer)

	// --- Router ---
	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := v1.NewRouter(v1.RouterConfig{
		Services: services,
		DB:       pool,
		Counters: sequencer,
		Logger:   log,
		Metrics:  m,
		Gatherer: registry,
		Version:  cfg.App.Version,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to build router", "error", err)
	}

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Infow("server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
