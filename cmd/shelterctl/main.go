package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"shelter-backend/internal/config"
	"shelter-backend/pkg/logger"
)

// rootCmd là entrypoint của shelterctl
var rootCmd = &cobra.Command{
	Use:   "shelterctl",
	Short: "Admin tasks for the shelter backend",
	Long: `Run one-off admin tasks against the shelter database.

Available subcommands:
  migrate     - Create tables if they do not exist
  create-user - Add a login account`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envErr := godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.App.Environment, "shelterctl")
		if envErr != nil {
			logger.Debug("No .env file found, using system environment variables")
		}

		appConfig = cfg
		return nil
	},
}

// appConfig được load trong PersistentPreRunE
var appConfig *config.Config

func init() {
	rootCmd.AddCommand(migrateCmd, createUserCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Error().Err(err).Msg("shelterctl failed")
		os.Exit(1)
	}
}
