package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"glambook/database"
	"glambook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func activeStatusFilter() bson.M {
	statuses := make([]string, len(models.ActiveStatuses))
	for i, s := range models.ActiveStatuses {
		statuses[i] = string(s)
	}
	return bson.M{"$in": statuses}
}

// overlapFilter matches active bookings of the artist whose half-open
// interval intersects [start, end). The interval end is derived from the
// stored duration, so variable-length sessions are compared correctly.
func overlapFilter(artistID string, start, end time.Time) bson.M {
	return bson.M{
		"artist_id": artistID,
		"status":    activeStatusFilter(),
		"date_time": bson.M{"$lt": end},
		"$expr": bson.M{
			"$gt": bson.A{
				bson.M{"$add": bson.A{
					"$date_time",
					bson.M{"$multiply": bson.A{"$duration", 60 * 1000}},
				}},
				start,
			},
		},
	}
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ActiveInRange(ctx context.Context, artistID string, from, to time.Time) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, overlapFilter(artistID, from, to), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for artist %s: %w", artistID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) CancelIfPending(ctx context.Context, id string) (bool, error) {
	filter := bson.M{"id": id, "status": models.BookingPending}
	update := bson.M{"$set": bson.M{"status": models.BookingCancelled, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to expire booking %s: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoBookingRepo) listBy(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_time", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByArtist(ctx context.Context, artistID string) ([]models.Booking, error) {
	return r.listBy(ctx, bson.M{"artist_id": artistID})
}

func (r *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.listBy(ctx, bson.M{"customer_id": customerID})
}

func (r *MongoBookingRepo) HasCompleted(ctx context.Context, customerID, artistID string) (bool, error) {
	filter := bson.M{
		"customer_id": customerID,
		"artist_id":   artistID,
		"status":      models.BookingCompleted,
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check completed bookings: %w", err)
	}
	return count > 0, nil
}
