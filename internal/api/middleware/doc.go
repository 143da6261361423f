// Package middleware contains the HTTP middleware shared by every route:
// caller authentication, role guards, request tracing and metrics.
package middleware
