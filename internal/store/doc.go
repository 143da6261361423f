// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the HTTP handlers, so the relational, document and in-memory backends
// are interchangeable without touching handler code.
package store
