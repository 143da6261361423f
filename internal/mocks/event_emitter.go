package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ucsb-cs156/campus-records-api/internal/events"
)

// TestifyMockEventEmitter is a mock of events.EventEmitter for use with testify/mock
type TestifyMockEventEmitter struct {
	mock.Mock
}

var _ events.EventEmitter = (*TestifyMockEventEmitter)(nil)

// EmitEvent is a mock implementation of events.EventEmitter.EmitEvent
func (m *TestifyMockEventEmitter) EmitEvent(ctx context.Context, event *events.RecordCreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
