package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// kafkaWriter is the subset of *kafka.Writer used by KafkaPublisher.
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher forwards events to Kafka topics named
// "<prefix>.<entity>.created", keyed by event id.
type KafkaPublisher struct {
	writer kafkaWriter
	prefix string
	logger *slog.Logger
}

var _ EventHandler = (*KafkaPublisher)(nil)

// kafkaBatchTimeout bounds how long a synchronous write waits for a batch to
// fill. Each create request writes one message.
const kafkaBatchTimeout = 5 * time.Millisecond

// NewKafkaPublisher creates a publisher writing to brokers. Topics are
// created on first use when the cluster allows it.
func NewKafkaPublisher(brokers []string, prefix string, logger *slog.Logger) *KafkaPublisher {
	return newKafkaPublisher(newKafkaWriter(brokers), prefix, logger)
}

// newKafkaWriter returns a synchronous writer that flushes every message on
// its own instead of waiting out the default one-second batch timeout.
func newKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              1,
		BatchTimeout:           kafkaBatchTimeout,
	}
}

func newKafkaPublisher(writer kafkaWriter, prefix string, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaPublisher{
		writer: writer,
		prefix: prefix,
		logger: logger.With("component", "kafka_publisher"),
	}
}

// HandleEvent writes event as a single JSON message.
func (p *KafkaPublisher) HandleEvent(ctx context.Context, event *RecordCreatedEvent) error {
	data, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	topic := event.Subject(p.prefix)
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(event.ID.String()),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to write to Kafka topic %s: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published event to Kafka",
		"topic", topic,
		"event_id", event.ID)
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
