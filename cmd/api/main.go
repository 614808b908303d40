package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/config"
	"shelter-backend/pkg/container"
	"shelter-backend/pkg/logger"
)

func main() {
	// .env chỉ dùng khi chạy local, production đọc env của hệ thống
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("production", "api")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment, "api")
	if envErr != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("API stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	appContainer, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer appContainer.Cleanup()

	if err := appContainer.DB.Migrate(ctx); err != nil {
		return err
	}

	if err := appContainer.SeedBootstrapAdmin(ctx); err != nil {
		return err
	}

	return Serve(appContainer)
}
