package testutils

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// LogEntry is a captured log record flattened into a map. The message is
// stored under "message" and the level under "level".
type LogEntry map[string]any

// String returns the value of key formatted with %v, or "" when absent.
func (e LogEntry) String(key string) string {
	v, ok := e[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// entryLog is shared by a handler and every handler derived from it.
type entryLog struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestSlogHandler is a memory-backed slog.Handler for testing. Attributes
// added with Logger.With are kept and group names prefix keys with a dot.
type TestSlogHandler struct {
	log    *entryLog
	attrs  []slog.Attr
	prefix string
}

var _ slog.Handler = (*TestSlogHandler)(nil)

// NewTestSlogHandler creates a new memory-backed slog handler.
func NewTestSlogHandler() *TestSlogHandler {
	return &TestSlogHandler{log: &entryLog{}}
}

// NewTestLogger returns a logger writing to a new TestSlogHandler.
func NewTestLogger() (*slog.Logger, *TestSlogHandler) {
	h := NewTestSlogHandler()
	return slog.New(h), h
}

// Enabled satisfies slog.Handler; every level is captured.
func (h *TestSlogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Resolve().Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[h.prefix+attr.Key] = attr.Value.Resolve().Any()
		return true
	})

	h.log.mu.Lock()
	defer h.log.mu.Unlock()
	h.log.entries = append(h.log.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler.
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.prefix + attr.Key, Value: attr.Value})
	}
	return &next
}

// WithGroup satisfies slog.Handler.
func (h *TestSlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// Entries returns all captured log entries.
func (h *TestSlogHandler) Entries() []LogEntry {
	h.log.mu.Lock()
	defer h.log.mu.Unlock()

	result := make([]LogEntry, len(h.log.entries))
	copy(result, h.log.entries)
	return result
}

// Find returns the captured entries whose message equals message.
func (h *TestSlogHandler) Find(message string) []LogEntry {
	var found []LogEntry
	for _, entry := range h.Entries() {
		if entry["message"] == message {
			found = append(found, entry)
		}
	}
	return found
}

// Clear resets the captured log entries.
func (h *TestSlogHandler) Clear() {
	h.log.mu.Lock()
	defer h.log.mu.Unlock()
	h.log.entries = nil
}
