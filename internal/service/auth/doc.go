// Package auth verifies and issues the bearer tokens that identify API
// callers, and resolves the role a verified caller holds.
package auth
