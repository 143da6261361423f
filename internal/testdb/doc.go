//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can run in parallel against the same tables without
// cleanup.
//
//	func TestMyStore(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
//	        s := postgres.NewPostgresRecommendationRequestStore(tx, nil)
//	        ...
//	    })
//	}
//
// The connection string is read from DATABASE_URL, then CAMPUS_TEST_DB_URL.
// Tests are skipped when neither is set.
package testdb
