// Package memory provides in-process implementations of the repositories
// defined in internal/store. Records live for the lifetime of the process,
// which makes the backend suitable for local runs and tests.
package memory
