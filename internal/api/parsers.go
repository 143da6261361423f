package api

import (
	"net/url"

	"github.com/ucsb-cs156/campus-records-api/internal/api/shared"
	"github.com/ucsb-cs156/campus-records-api/internal/domain"
)

// ParseRecommendationRequest reads requesterEmail, professorEmail,
// explanation and dateRequested.
func ParseRecommendationRequest(values url.Values) (*domain.RecommendationRequest, error) {
	requesterEmail, err := shared.RequiredString(values, "requesterEmail")
	if err != nil {
		return nil, err
	}
	professorEmail, err := shared.RequiredString(values, "professorEmail")
	if err != nil {
		return nil, err
	}
	explanation, err := shared.RequiredString(values, "explanation")
	if err != nil {
		return nil, err
	}
	dateRequested, err := shared.RequiredLocalDateTime(values, "dateRequested")
	if err != nil {
		return nil, err
	}

	return &domain.RecommendationRequest{
		RequesterEmail: requesterEmail,
		ProfessorEmail: professorEmail,
		Explanation:    explanation,
		DateRequested:  dateRequested,
	}, nil
}

// ParseMenuItemReview reads itemId, reviewerEmail, stars, dateReviewed and
// comments. Stars and itemId are parsed but not range checked.
func ParseMenuItemReview(values url.Values) (*domain.MenuItemReview, error) {
	itemID, err := shared.RequiredInt64(values, "itemId")
	if err != nil {
		return nil, err
	}
	reviewerEmail, err := shared.RequiredString(values, "reviewerEmail")
	if err != nil {
		return nil, err
	}
	stars, err := shared.RequiredInt(values, "stars")
	if err != nil {
		return nil, err
	}
	dateReviewed, err := shared.RequiredLocalDateTime(values, "dateReviewed")
	if err != nil {
		return nil, err
	}
	comments, err := shared.RequiredString(values, "comments")
	if err != nil {
		return nil, err
	}

	return &domain.MenuItemReview{
		ItemID:        itemID,
		ReviewerEmail: reviewerEmail,
		Stars:         stars,
		DateReviewed:  dateReviewed,
		Comments:      comments,
	}, nil
}
