package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// natsConn is the subset of *nats.Conn used by NATSPublisher.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher forwards events to NATS subjects named
// "<prefix>.<entity>.created".
type NATSPublisher struct {
	conn   natsConn
	prefix string
	logger *slog.Logger
}

var _ EventHandler = (*NATSPublisher)(nil)

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url, prefix string, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("campus-records-api"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return newNATSPublisher(nc, prefix, logger), nil
}

func newNATSPublisher(conn natsConn, prefix string, logger *slog.Logger) *NATSPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NATSPublisher{
		conn:   conn,
		prefix: prefix,
		logger: logger.With("component", "nats_publisher"),
	}
}

// HandleEvent publishes event as JSON.
func (p *NATSPublisher) HandleEvent(ctx context.Context, event *RecordCreatedEvent) error {
	data, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := event.Subject(p.prefix)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to NATS subject %s: %w", subject, err)
	}

	p.logger.DebugContext(ctx, "published event to NATS",
		"subject", subject,
		"event_id", event.ID)
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
