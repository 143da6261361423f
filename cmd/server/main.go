// Package main implements the entry point for the campus records API
// server, which serves recommendation requests and dining commons menu item
// reviews behind role-based access control.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ucsb-cs156/campus-records-api/internal/config"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/logger"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/tracing"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a database migration command (up, up-by-one, down, reset, status, version, redo) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("campus records API exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and either executes a migration
// command or serves HTTP until shutdown.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"events_broker", cfg.Events.Broker)

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, migrateCmd, log)
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, log)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		_ = shutdownTracing(ctx)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	app.shutdownTracing = shutdownTracing

	return app.Run(ctx)
}
