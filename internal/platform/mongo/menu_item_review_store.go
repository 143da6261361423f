package mongo

import (
	"log/slog"
	"time"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	"github.com/ucsb-cs156/campus-records-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuItemReviewsCollection is the collection holding menu item reviews.
const MenuItemReviewsCollection = "ucsb_menu_item_reviews"

type menuItemReviewDocument struct {
	ID            int64     `bson:"_id"`
	ItemID        int64     `bson:"item_id"`
	ReviewerEmail string    `bson:"reviewer_email"`
	Stars         int       `bson:"stars"`
	DateReviewed  time.Time `bson:"date_reviewed"`
	Comments      string    `bson:"comments"`
}

func toMenuItemReviewDocument(r *domain.MenuItemReview, id int64) menuItemReviewDocument {
	return menuItemReviewDocument{
		ID:            id,
		ItemID:        r.ItemID,
		ReviewerEmail: r.ReviewerEmail,
		Stars:         r.Stars,
		DateReviewed:  r.DateReviewed.Time(),
		Comments:      r.Comments,
	}
}

func fromMenuItemReviewDocument(d *menuItemReviewDocument) *domain.MenuItemReview {
	return &domain.MenuItemReview{
		ID:            d.ID,
		ItemID:        d.ItemID,
		ReviewerEmail: d.ReviewerEmail,
		Stars:         d.Stars,
		DateReviewed:  domain.NewLocalDateTime(d.DateReviewed.UTC()),
		Comments:      d.Comments,
	}
}

// MenuItemReviewStore implements store.MenuItemReviewStore on MongoDB.
type MenuItemReviewStore struct {
	collectionStore[domain.MenuItemReview, menuItemReviewDocument]
}

// Ensure MenuItemReviewStore implements store.MenuItemReviewStore
var _ store.MenuItemReviewStore = (*MenuItemReviewStore)(nil)

// NewMenuItemReviewStore creates a store over db. If logger is nil, a
// default logger will be used.
func NewMenuItemReviewStore(db *mongo.Database, logger *slog.Logger) *MenuItemReviewStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MenuItemReviewStore{collectionStore[domain.MenuItemReview, menuItemReviewDocument]{
		db:         db,
		collection: MenuItemReviewsCollection,
		entity:     domain.MenuItemReviewEntity,
		toDoc:      toMenuItemReviewDocument,
		fromDoc:    fromMenuItemReviewDocument,
		logger:     logger.With(slog.String("component", "mongo_menu_item_review_store")),
	}}
}
