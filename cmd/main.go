package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "promo-engine/internal/adapter/http"
	"promo-engine/internal/adapter/postgres"
	"promo-engine/internal/adapter/usecase"
	"promo-engine/internal/config"
	"promo-engine/internal/db"
	"promo-engine/internal/reconciler"
)

// main is the entry point of the promotion engine. It loads
// configuration, optionally runs database migrations, initializes the
// database pool and the store, then starts the lifecycle reconciler and
// the HTTP server. On receiving a termination signal it gracefully
// shuts down both.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout))

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemoData {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	store := postgres.NewStore(pool)
	svc := usecase.NewPromotionOptimizer(store)

	sweeps := reconciler.New(store, logger, reconciler.Config{
		RefundInterval:      cfg.Reconciler.RefundInterval,
		ExhaustionInterval:  cfg.Reconciler.ExhaustionInterval,
		ResetInterval:       cfg.Reconciler.ResetInterval,
		ExhaustionThreshold: cfg.Reconciler.ExhaustionThreshold,
	})
	go func() {
		logger.Info("lifecycle reconciler started")
		if err := sweeps.Run(ctx); err != nil {
			logger.Error("reconciler error", slog.Any("error", err))
		}
	}()

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
