package events

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// RecordCreatedEvent announces that a record was persisted.
type RecordCreatedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is "<entity>.created"
	Type string `json:"type"`

	// Entity is the record type, e.g. "recommendationrequest"
	Entity string `json:"entity"`

	// Record is the stored record serialized as JSON
	Record json.RawMessage `json:"record"`

	// OccurredAt is the timestamp when the event was created
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRecordCreatedEvent creates a RecordCreatedEvent for a stored record.
func NewRecordCreatedEvent(entity string, record any) (*RecordCreatedEvent, error) {
	recordBytes, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	return &RecordCreatedEvent{
		ID:         uuid.New(),
		Type:       entity + ".created",
		Entity:     entity,
		Record:     recordBytes,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// Subject returns the broker subject or topic for the event under prefix,
// e.g. "campus.recommendationrequest.created".
func (e *RecordCreatedEvent) Subject(prefix string) string {
	if prefix == "" {
		return e.Type
	}
	return prefix + "." + e.Type
}

// Marshal encodes the event as JSON.
func (e *RecordCreatedEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// UnmarshalRecord decodes the record payload into v.
func (e *RecordCreatedEvent) UnmarshalRecord(v any) error {
	return json.Unmarshal(e.Record, v)
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *RecordCreatedEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows handlers to publish events without knowledge of the broker.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *RecordCreatedEvent) error
}
