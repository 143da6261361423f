package memory

import (
	"context"
	"sync"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	"github.com/ucsb-cs156/campus-records-api/internal/store"
)

// Store is a mutex-guarded, append-only repository. Identities start at 1
// and increase by one per created record.
type Store[T any] struct {
	mu      sync.RWMutex
	records []T
	nextID  int64
	setID   func(*T, int64)
}

var (
	_ store.RecommendationRequestStore = (*Store[domain.RecommendationRequest])(nil)
	_ store.MenuItemReviewStore        = (*Store[domain.MenuItemReview])(nil)
)

// NewStore creates an empty store. setID writes the assigned identity into
// a record.
func NewStore[T any](setID func(*T, int64)) *Store[T] {
	return &Store[T]{
		records: make([]T, 0),
		nextID:  1,
		setID:   setID,
	}
}

// NewRecommendationRequestStore creates an empty recommendation request store.
func NewRecommendationRequestStore() *Store[domain.RecommendationRequest] {
	return NewStore(func(r *domain.RecommendationRequest, id int64) { r.ID = id })
}

// NewMenuItemReviewStore creates an empty menu item review store.
func NewMenuItemReviewStore() *Store[domain.MenuItemReview] {
	return NewStore(func(r *domain.MenuItemReview, id int64) { r.ID = id })
}

// List returns copies of every record in creation order.
func (s *Store[T]) List(ctx context.Context) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, 0, len(s.records))
	for i := range s.records {
		record := s.records[i]
		out = append(out, &record)
	}
	return out, nil
}

// Create stores a copy of record under the next identity and returns
// another copy, so callers never share memory with the store.
func (s *Store[T]) Create(ctx context.Context, record *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *record
	s.setID(&stored, s.nextID)
	s.nextID++
	s.records = append(s.records, stored)

	saved := stored
	return &saved, nil
}
