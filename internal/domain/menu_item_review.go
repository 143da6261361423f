package domain

// MenuItemReview is a diner's review of a UCSB dining commons menu item.
//
// ItemID refers to a row of the dining commons menu item table by convention
// only; it is not checked. Stars is documented as 0 to 5 but is not validated.
type MenuItemReview struct {
	ID            int64         `json:"id" db:"id"`
	ItemID        int64         `json:"itemId" db:"item_id"`
	ReviewerEmail string        `json:"reviewerEmail" db:"reviewer_email"`
	Stars         int           `json:"stars" db:"stars"`
	DateReviewed  LocalDateTime `json:"dateReviewed" db:"date_reviewed"`
	Comments      string        `json:"comments" db:"comments"`
}

// MenuItemReviewEntity is the name used in routes, logs and events.
const MenuItemReviewEntity = "ucsbmenuitemreview"
