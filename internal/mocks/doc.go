// Package mocks provides centralized mock implementations for testing.
//
// Mocks use function fields for custom behavior and fall back to fixed
// default values, so a test only sets what it cares about:
//
//	repo := &mocks.MockRepository[domain.RecommendationRequest]{
//	    CreateFn: func(ctx context.Context, r *domain.RecommendationRequest) (*domain.RecommendationRequest, error) {
//	        saved := *r
//	        saved.ID = 1
//	        return &saved, nil
//	    },
//	}
//
// Repository mocks also record every call so tests can assert that a
// handler did or did not reach the store.
package mocks
