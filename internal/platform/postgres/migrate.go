package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationsDir is the directory inside migrationsFS holding the SQL files.
const migrationsDir = "migrations"

// Supported migration commands.
var migrationCommands = map[string]bool{
	"up":        true,
	"up-by-one": true,
	"down":      true,
	"reset":     true,
	"status":    true,
	"version":   true,
	"redo":      true,
}

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level. It does not exit; goose returns the error to
// the caller as well.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate runs the goose command (up, down, status, ...) against db using the
// embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !migrationCommands[command] {
		return fmt.Errorf("unsupported migration command %q", command)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "migrations", "command", command)

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogGooseLogger{logger: logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	start := time.Now()
	logger.Info("starting migration operation")

	if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
		logger.Error("migration operation failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("migration operation completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
