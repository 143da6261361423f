package domain

// RecommendationRequest is a student's request for a letter of
// recommendation from a professor.
type RecommendationRequest struct {
	ID             int64         `json:"id" db:"id"`
	RequesterEmail string        `json:"requesterEmail" db:"requester_email"`
	ProfessorEmail string        `json:"professorEmail" db:"professor_email"`
	Explanation    string        `json:"explanation" db:"explanation"`
	DateRequested  LocalDateTime `json:"dateRequested" db:"date_requested"`
}

// RecommendationRequestEntity is the name used in routes, logs and events.
const RecommendationRequestEntity = "recommendationrequest"
