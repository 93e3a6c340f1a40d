package bookingRepo

import (
	"context"
	"fmt"

	"glambook/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reserve checks for overlapping active bookings and inserts the new one
// inside a single multi-document transaction, so two racing reservations
// for intersecting intervals cannot both commit. Exact-time duplicates are
// additionally rejected by the partial unique index even outside a
// transaction-capable deployment.
func (r *MongoBookingRepo) Reserve(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := overlapFilter(booking.ArtistID, booking.DateTime, booking.End())
		count, err := r.coll.CountDocuments(sc, filter, options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}

	return nil
}
