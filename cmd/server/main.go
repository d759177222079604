package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/smartdropperofficial/taxapi/internal/api"
	"github.com/smartdropperofficial/taxapi/internal/config"
	"github.com/smartdropperofficial/taxapi/internal/crypto"
	"github.com/smartdropperofficial/taxapi/internal/repository/postgres"
	"github.com/smartdropperofficial/taxapi/internal/service"
	"github.com/smartdropperofficial/taxapi/internal/zinc"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := postgres.NewRepositories(db, logger)

	zincClient := zinc.NewClient(cfg.Zinc, logger)
	taxService := service.NewTaxService(cfg.Zinc, repos, zincClient, logger)
	decryptor := crypto.NewDecryptor(cfg.API.EncryptionKey, logger)

	router := api.NewRouter(cfg, repos, taxService, zincClient, decryptor, logger)

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
