package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionStore implements store.Repository[T] over a collection of
// documents of type D.
type collectionStore[T any, D any] struct {
	db         *mongo.Database
	collection string
	entity     string
	toDoc      func(record *T, id int64) D
	fromDoc    func(doc *D) *T
	logger     *slog.Logger
}

// List returns every document ordered by _id.
func (s *collectionStore[T, D]) List(ctx context.Context) ([]*T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.db.Collection(s.collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query collection", "error", err)
		return nil, wrapError(s.entity, "list", err)
	}

	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		s.logger.ErrorContext(ctx, "failed to decode documents", "error", err)
		return nil, wrapError(s.entity, "list", err)
	}

	records := make([]*T, 0, len(docs))
	for i := range docs {
		records = append(records, s.fromDoc(&docs[i]))
	}
	return records, nil
}

// Create draws the next identity from the counters collection and inserts
// record under it.
func (s *collectionStore[T, D]) Create(ctx context.Context, record *T) (*T, error) {
	id, err := nextSequence(ctx, s.db, s.collection)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to allocate identity", "error", err)
		return nil, wrapError(s.entity, "create", err)
	}

	doc := s.toDoc(record, id)
	if _, err := s.db.Collection(s.collection).InsertOne(ctx, doc); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert document", "error", err, "id", id)
		return nil, wrapError(s.entity, "create", err)
	}

	s.logger.DebugContext(ctx, "created document", "id", id)
	return s.fromDoc(&doc), nil
}
