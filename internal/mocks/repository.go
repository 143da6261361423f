package mocks

import (
	"context"
	"sync"

	"github.com/ucsb-cs156/campus-records-api/internal/store"
)

// MockRepository implements store.Repository[T] and records every call.
type MockRepository[T any] struct {
	// ListFn allows test cases to mock the List behavior
	ListFn func(ctx context.Context) ([]*T, error)

	// CreateFn allows test cases to mock the Create behavior
	CreateFn func(ctx context.Context, record *T) (*T, error)

	// Default values used when functions aren't explicitly defined
	Records   []*T
	Created   *T
	ListErr   error
	CreateErr error

	mu          sync.Mutex
	listCalls   int
	createCalls []T
}

var _ store.Repository[struct{}] = (*MockRepository[struct{}])(nil)

// List implements store.Repository
func (m *MockRepository[T]) List(ctx context.Context) ([]*T, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.Records == nil {
		return []*T{}, nil
	}
	return m.Records, nil
}

// Create implements store.Repository. The argument is copied when recorded,
// so later changes by the caller do not affect assertions.
func (m *MockRepository[T]) Create(ctx context.Context, record *T) (*T, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, *record)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, record)
	}
	return m.Created, m.CreateErr
}

// ListCalls returns how many times List was called.
func (m *MockRepository[T]) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

// CreateCalls returns the records passed to Create, in call order.
func (m *MockRepository[T]) CreateCalls() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T(nil), m.createCalls...)
}
