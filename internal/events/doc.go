// Package events provides types and interfaces for publishing domain events.
//
// Handlers call an EventEmitter after a record is persisted. The emitter fans
// the event out to registered EventHandlers, which forward it to a message
// broker (NATS or Kafka). With no handler registered, emitting is a no-op.
//
// The primary components are:
// - RecordCreatedEvent: Announces that a record was stored
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
