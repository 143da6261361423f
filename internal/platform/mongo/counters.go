package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CountersCollection holds one sequence document per record collection.
const CountersCollection = "counters"

type counterDocument struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

// nextSequence atomically increments and returns the sequence called name.
// The first value handed out is 1.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDocument
	err := db.Collection(CountersCollection).FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: name}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
