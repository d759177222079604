package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/smartdropperofficial/taxapi/internal/config"
	"github.com/smartdropperofficial/taxapi/internal/repository/postgres"
	"github.com/smartdropperofficial/taxapi/internal/service"
	"github.com/smartdropperofficial/taxapi/internal/zinc"
)

// process-pending submits a tax request for every order in TAX_PENDING.
// Run it from cron or a scheduler; re-running is safe because each order's
// id doubles as the Zinc idempotency key.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repos := postgres.NewRepositories(db, logger)

	zincClient := zinc.NewClient(cfg.Zinc, logger)
	taxService := service.NewTaxService(cfg.Zinc, repos, zincClient, logger)

	if err := taxService.SubmitPending(context.Background()); err != nil {
		logger.Fatal("Failed to process pending orders", zap.Error(err))
	}

	for orderID, entry := range taxService.Statuses().All() {
		switch entry.Status {
		case service.SubmissionSucceeded:
			fmt.Printf("✅ %s: request_id=%s\n", orderID, entry.TaxRequestID)
		default:
			fmt.Printf("❌ %s: %s\n", orderID, entry.Reason)
		}
	}
}
