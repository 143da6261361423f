// Package postgres provides PostgreSQL implementations of the repositories
// defined in the internal/store package. It owns connection setup, the
// embedded goose migrations, and the mapping between domain records and
// table rows.
package postgres
