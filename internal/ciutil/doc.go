// Package ciutil detects the execution environment (CI or local) and reads
// the environment variables used by integration tests in a consistent way.
package ciutil
