package store

import (
	"context"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
)

// Repository is the persistence contract shared by every record type.
type Repository[T any] interface {
	// List returns every stored record ordered by identity.
	// Returns an empty, non-nil slice when nothing is stored.
	List(ctx context.Context) ([]*T, error)

	// Create assigns a new identity to record, persists all of its fields
	// and returns the stored record as a new value. Any identity already set
	// on record is ignored. Create is not idempotent.
	Create(ctx context.Context, record *T) (*T, error)
}

// RecommendationRequestStore persists recommendation requests.
type RecommendationRequestStore interface {
	Repository[domain.RecommendationRequest]
}

// MenuItemReviewStore persists dining commons menu item reviews.
type MenuItemReviewStore interface {
	Repository[domain.MenuItemReview]
}
