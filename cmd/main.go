package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "coretas/internal/adapter/http"
	"coretas/internal/adapter/memory"
	"coretas/internal/adapter/platform"
	"coretas/internal/adapter/postgres"
	"coretas/internal/adapter/usecase"
	"coretas/internal/config"
	"coretas/internal/core/port"
	"coretas/internal/db"
	"coretas/internal/telemetry"
)

// main loads configuration, wires the selected campaign store (in-memory or
// PostgreSQL), the platform adapters and the planner, then serves the HTTP
// API until a termination signal triggers a graceful shutdown.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.CampaignRepository
	if cfg.Backend.UsePostgres() {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Backend.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				os.Exit(1)
			}
		}
		repo = postgres.NewCampaignRepository(pool)
		logger.Info("using postgres campaign store")
	} else {
		store := memory.NewCampaignRepository()
		if cfg.Backend.Seed {
			if err = memory.Seed(ctx, store); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				os.Exit(1)
			}
		}
		repo = store
		logger.Info("using in-memory campaign store")
	}

	planner := usecase.NewPlanner(repo, []port.PlatformAdapter{
		platform.NewGoogle(cfg.Platforms, logger),
		platform.NewMeta(cfg.Platforms, logger),
		platform.NewAmazon(cfg.Platforms, logger),
	}, logger)

	tel := telemetry.New()
	handler := httpadapter.NewHandler(planner, tel, cfg.HTTP.FrontendURL, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
