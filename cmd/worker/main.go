package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/config"
	"shelter-backend/internal/infrastructure/storage"
	"shelter-backend/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("production", "worker")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment, "worker")
	if envErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Worker exited")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Shelter worker starting", map[string]interface{}{
		"queue":       cfg.Jobs.ImageQueue,
		"concurrency": cfg.Jobs.WorkerConcurrency,
	})

	// 1. Redis phải sẵn sàng trước khi nhận task
	checker := newHealthChecker(cfg.Redis)
	defer func() { _ = checker.Close() }()

	if err := checker.checkRedis(ctx); err != nil {
		return err
	}

	// 2. MinIO store, worker chỉ dùng DeleteImage
	store, err := storage.NewMinIOImageStore(ctx, cfg.MinIO, cfg.Storage,
		storage.NewFSPool(cfg.Storage.FSWorkers),
		storage.NewImageProcessor(cfg.Storage.MaxImageDimPx),
	)
	if err != nil {
		return err
	}

	// 3. Asynq server
	srv := setupAsynqServer(cfg, initializeHandlers(store))
	if err := srv.Start(); err != nil {
		return err
	}

	health := startHealthCheckServer(cfg.Jobs.WorkerHealthAddr, checker)

	<-ctx.Done()
	logger.Warn("Shutdown signal received", map[string]interface{}{"signal": ctx.Err().Error()})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := health.Shutdown(shutdownCtx); err != nil {
		logger.Error("Health server shutdown failed", err)
	}

	srv.Shutdown()
	return nil
}
