package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the booking indexes. The partial unique index on
// (artist_id, date_time) is what makes exact-time double-booking impossible
// at the storage layer: it covers only active statuses, so cancelling a
// booking frees its slot immediately.
//
// The $in in the partial filter expression requires MongoDB 6.0 or newer.
// On older servers this index is not created and Reserve's transaction
// remains the only double-booking guard.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "date_time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": activeStatusFilter()}),
		},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "date_time", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
