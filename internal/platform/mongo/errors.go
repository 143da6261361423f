package mongo

import (
	"errors"
	"fmt"

	"github.com/ucsb-cs156/campus-records-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// MapError classifies a driver error as a store error.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
	}
	return fmt.Errorf("%w: %w", store.ErrStoreUnavailable, err)
}

func wrapError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}
	return store.NewStoreError(entity, operation, "mongo operation failed", MapError(err))
}
