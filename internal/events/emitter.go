package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// namedHandler pairs a handler with the name used in logs and errors.
type namedHandler struct {
	name    string
	handler EventHandler
}

// InMemoryEventEmitter fans record events out to the broker publishers
// registered with it, in registration order.
type InMemoryEventEmitter struct {
	handlers []namedHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

var _ EventEmitter = (*InMemoryEventEmitter)(nil)

// NewInMemoryEventEmitter creates an emitter with no handlers. Until one is
// registered, emitted events are dropped.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With("component", "event_emitter"),
	}
}

// RegisterHandler adds handler under name, e.g. "nats" or "kafka".
func (e *InMemoryEventEmitter) RegisterHandler(name string, handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, namedHandler{name: name, handler: handler})
	e.logger.Debug("registered event handler",
		"handler", name,
		"handler_count", len(e.handlers))
}

// Handlers returns the registered handler names in registration order.
func (e *InMemoryEventEmitter) Handlers() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, len(e.handlers))
	for i, h := range e.handlers {
		names[i] = h.name
	}
	return names
}

// EmitEvent delivers event to every handler. A failing handler does not stop
// delivery to the others; all failures are returned joined, each prefixed
// with its handler name.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *RecordCreatedEvent) error {
	e.mu.RLock()
	handlers := make([]namedHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	log := e.logger.With(
		"event_id", event.ID,
		"event_type", event.Type,
		"entity", event.Entity)

	if len(handlers) == 0 {
		log.DebugContext(ctx, "no event handlers registered; event dropped")
		return nil
	}

	var errs []error
	for _, h := range handlers {
		if err := h.handler.HandleEvent(ctx, event); err != nil {
			log.ErrorContext(ctx, "event handler failed",
				"handler", h.name,
				"error", err)
			errs = append(errs, fmt.Errorf("%s: %w", h.name, err))
			continue
		}
		log.DebugContext(ctx, "event delivered", "handler", h.name)
	}

	return errors.Join(errs...)
}
