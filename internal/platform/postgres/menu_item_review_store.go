package postgres

import (
	"context"
	"log/slog"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	"github.com/ucsb-cs156/campus-records-api/internal/store"
)

const (
	listMenuItemReviewsQuery = `
		SELECT id, item_id, reviewer_email, stars, date_reviewed, comments
		FROM ucsb_menu_item_reviews
		ORDER BY id`

	insertMenuItemReviewQuery = `
		INSERT INTO ucsb_menu_item_reviews (item_id, reviewer_email, stars, date_reviewed, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, item_id, reviewer_email, stars, date_reviewed, comments`
)

// PostgresMenuItemReviewStore implements store.MenuItemReviewStore on the
// ucsb_menu_item_reviews table.
type PostgresMenuItemReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresMenuItemReviewStore implements store.MenuItemReviewStore
var _ store.MenuItemReviewStore = (*PostgresMenuItemReviewStore)(nil)

// NewPostgresMenuItemReviewStore creates a store backed by db. If logger is
// nil, a default logger will be used.
func NewPostgresMenuItemReviewStore(db store.DBTX, logger *slog.Logger) *PostgresMenuItemReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMenuItemReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "menu_item_review_store")),
	}
}

// List implements store.MenuItemReviewStore.List
func (s *PostgresMenuItemReviewStore) List(ctx context.Context) ([]*domain.MenuItemReview, error) {
	reviews := make([]*domain.MenuItemReview, 0)
	if err := s.db.SelectContext(ctx, &reviews, listMenuItemReviewsQuery); err != nil {
		s.logger.ErrorContext(ctx, "failed to list menu item reviews", "error", err)
		return nil, wrapError(domain.MenuItemReviewEntity, "list", err)
	}

	s.logger.DebugContext(ctx, "listed menu item reviews", "count", len(reviews))
	return reviews, nil
}

// Create implements store.MenuItemReviewStore.Create
func (s *PostgresMenuItemReviewStore) Create(
	ctx context.Context,
	review *domain.MenuItemReview,
) (*domain.MenuItemReview, error) {
	saved := &domain.MenuItemReview{}
	err := s.db.QueryRowxContext(ctx, insertMenuItemReviewQuery,
		review.ItemID,
		review.ReviewerEmail,
		review.Stars,
		review.DateReviewed,
		review.Comments,
	).StructScan(saved)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create menu item review", "error", err)
		return nil, wrapError(domain.MenuItemReviewEntity, "create", err)
	}

	s.logger.DebugContext(ctx, "created menu item review", "id", saved.ID, "item_id", saved.ItemID)
	return saved, nil
}
