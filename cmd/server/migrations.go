package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ucsb-cs156/campus-records-api/internal/config"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/postgres"
)

// handleMigrations runs a goose command against the configured postgres
// database. Other drivers have no schema to migrate.
func handleMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %q driver, configured driver is %q",
			config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	logger.Info("Executing migrations", "command", command)
	if err := postgres.Migrate(ctx, db.DB, command, logger); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	logger.Info("Migrations completed", "command", command)
	return nil
}
