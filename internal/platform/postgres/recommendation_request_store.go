package postgres

import (
	"context"
	"log/slog"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	"github.com/ucsb-cs156/campus-records-api/internal/store"
)

const (
	listRecommendationRequestsQuery = `
		SELECT id, requester_email, professor_email, explanation, date_requested
		FROM recommendation_requests
		ORDER BY id`

	insertRecommendationRequestQuery = `
		INSERT INTO recommendation_requests (requester_email, professor_email, explanation, date_requested)
		VALUES ($1, $2, $3, $4)
		RETURNING id, requester_email, professor_email, explanation, date_requested`
)

// PostgresRecommendationRequestStore implements store.RecommendationRequestStore
// on the recommendation_requests table.
type PostgresRecommendationRequestStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresRecommendationRequestStore implements store.RecommendationRequestStore
var _ store.RecommendationRequestStore = (*PostgresRecommendationRequestStore)(nil)

// NewPostgresRecommendationRequestStore creates a store backed by db, which
// may be a connection pool or a transaction. If logger is nil, a default
// logger will be used.
func NewPostgresRecommendationRequestStore(
	db store.DBTX,
	logger *slog.Logger,
) *PostgresRecommendationRequestStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRecommendationRequestStore{
		db:     db,
		logger: logger.With(slog.String("component", "recommendation_request_store")),
	}
}

// List implements store.RecommendationRequestStore.List
func (s *PostgresRecommendationRequestStore) List(
	ctx context.Context,
) ([]*domain.RecommendationRequest, error) {
	requests := make([]*domain.RecommendationRequest, 0)
	if err := s.db.SelectContext(ctx, &requests, listRecommendationRequestsQuery); err != nil {
		s.logger.ErrorContext(ctx, "failed to list recommendation requests", "error", err)
		return nil, wrapError(domain.RecommendationRequestEntity, "list", err)
	}

	s.logger.DebugContext(ctx, "listed recommendation requests", "count", len(requests))
	return requests, nil
}

// Create implements store.RecommendationRequestStore.Create
func (s *PostgresRecommendationRequestStore) Create(
	ctx context.Context,
	request *domain.RecommendationRequest,
) (*domain.RecommendationRequest, error) {
	saved := &domain.RecommendationRequest{}
	err := s.db.QueryRowxContext(ctx, insertRecommendationRequestQuery,
		request.RequesterEmail,
		request.ProfessorEmail,
		request.Explanation,
		request.DateRequested,
	).StructScan(saved)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create recommendation request", "error", err)
		return nil, wrapError(domain.RecommendationRequestEntity, "create", err)
	}

	s.logger.DebugContext(ctx, "created recommendation request", "id", saved.ID)
	return saved, nil
}
