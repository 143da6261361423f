package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strconv"
	"time"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// PrincipalContextKey is the context key for the authenticated caller
	PrincipalContextKey ContextKey = "principal"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// Principal is the caller of a request as resolved from its credentials.
type Principal struct {
	Email string
	Role  domain.Role
}

// Anonymous is the principal of a request without valid credentials.
var Anonymous = Principal{Role: domain.RoleAnonymous}

// IsAnonymous reports whether p carries no identity.
func (p Principal) IsAnonymous() bool {
	return p.Role == domain.RoleAnonymous
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, p)
}

// GetPrincipal returns the principal stored in ctx, or Anonymous when the
// request was never authenticated.
func GetPrincipal(ctx context.Context) Principal {
	p, ok := ctx.Value(PrincipalContextKey).(Principal)
	if !ok {
		return Anonymous
	}
	return p
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, NewTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// NewTraceID returns a random 32-character hex identifier. If the random
// source fails it falls back to a time-based value, never a constant.
func NewTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"fallback", "time-based generation")
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(b)
}
