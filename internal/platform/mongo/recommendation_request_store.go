package mongo

import (
	"log/slog"
	"time"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	"github.com/ucsb-cs156/campus-records-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecommendationRequestsCollection is the collection holding recommendation requests.
const RecommendationRequestsCollection = "recommendation_requests"

type recommendationRequestDocument struct {
	ID             int64     `bson:"_id"`
	RequesterEmail string    `bson:"requester_email"`
	ProfessorEmail string    `bson:"professor_email"`
	Explanation    string    `bson:"explanation"`
	DateRequested  time.Time `bson:"date_requested"`
}

func toRecommendationRequestDocument(r *domain.RecommendationRequest, id int64) recommendationRequestDocument {
	return recommendationRequestDocument{
		ID:             id,
		RequesterEmail: r.RequesterEmail,
		ProfessorEmail: r.ProfessorEmail,
		Explanation:    r.Explanation,
		DateRequested:  r.DateRequested.Time(),
	}
}

func fromRecommendationRequestDocument(d *recommendationRequestDocument) *domain.RecommendationRequest {
	return &domain.RecommendationRequest{
		ID:             d.ID,
		RequesterEmail: d.RequesterEmail,
		ProfessorEmail: d.ProfessorEmail,
		Explanation:    d.Explanation,
		DateRequested:  domain.NewLocalDateTime(d.DateRequested.UTC()),
	}
}

// RecommendationRequestStore implements store.RecommendationRequestStore on MongoDB.
type RecommendationRequestStore struct {
	collectionStore[domain.RecommendationRequest, recommendationRequestDocument]
}

// Ensure RecommendationRequestStore implements store.RecommendationRequestStore
var _ store.RecommendationRequestStore = (*RecommendationRequestStore)(nil)

// NewRecommendationRequestStore creates a store over db. If logger is nil, a
// default logger will be used.
func NewRecommendationRequestStore(db *mongo.Database, logger *slog.Logger) *RecommendationRequestStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecommendationRequestStore{collectionStore[domain.RecommendationRequest, recommendationRequestDocument]{
		db:         db,
		collection: RecommendationRequestsCollection,
		entity:     domain.RecommendationRequestEntity,
		toDoc:      toRecommendationRequestDocument,
		fromDoc:    fromRecommendationRequestDocument,
		logger:     logger.With(slog.String("component", "mongo_recommendation_request_store")),
	}}
}
