//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/ucsb-cs156/campus-records-api/internal/ciutil"
	"github.com/ucsb-cs156/campus-records-api/internal/config"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/postgres"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// Environment variables consulted for the test database URL, in order.
const (
	EnvDatabaseURL = ciutil.EnvDatabaseURL
	EnvTestDBURL   = ciutil.EnvTestDBURL
)

// migrateOnce guards schema setup so parallel tests migrate a single time.
var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDatabaseURL returns the first non-empty database URL from
// DATABASE_URL and CAMPUS_TEST_DB_URL.
func GetTestDatabaseURL() string {
	return ciutil.GetEnvWithFallbacks([]string{EnvDatabaseURL, EnvTestDBURL}, "", nil)
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// MaskDatabaseURL hides the password of dbURL for safe logging.
func MaskDatabaseURL(dbURL string) string {
	return ciutil.MaskSensitiveValue(dbURL)
}

// GetTestDBWithT returns a migrated database connection and registers its
// cleanup. Without a database URL the test is skipped locally and fails
// in CI.
func GetTestDBWithT(t *testing.T) *sqlx.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatal("DATABASE_URL or CAMPUS_TEST_DB_URL must be set in CI")
		}
		t.Skip("DATABASE_URL or CAMPUS_TEST_DB_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, config.DatabaseConfig{
		URL:                    dbURL,
		MaxOpenConns:           10,
		MaxIdleConns:           5,
		ConnMaxLifetimeMinutes: 5,
	}, quietLogger())
	require.NoError(t, err, "failed to connect to %s", MaskDatabaseURL(dbURL))

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	SetupTestDatabaseSchema(t, db.DB)
	return db
}

// SetupTestDatabaseSchema applies the embedded migrations once per process.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(context.Background(), db, "up", quietLogger())
	})
	require.NoError(t, migrateErr, "failed to run migrations")
}

// WithTx runs fn inside a transaction that is always rolled back, so
// changes made by the test are never persisted.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	tx, err := db.Beginx()
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already ended the transaction
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
