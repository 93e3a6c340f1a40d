package artistRepo

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

// MongoArtistRepo implements ArtistRepository using MongoDB.
type MongoArtistRepo struct {
	coll *mongo.Collection
}

// NewMongoArtistRepo creates a new instance of ArtistRepository using MongoDB.
func NewMongoArtistRepo() ArtistRepository {
	repo := &MongoArtistRepo{coll: database.Collection("artists")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create artist indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoArtistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialties", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	if _, err := r.coll.InsertOne(ctx, artist); err != nil {
		return fmt.Errorf("failed to insert artist: %w", err)
	}
	return nil
}

func (r *MongoArtistRepo) getOne(ctx context.Context, filter bson.M) (*models.Artist, error) {
	var artist models.Artist
	err := r.coll.FindOne(ctx, filter).Decode(&artist)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artist: %w", err)
	}
	return &artist, nil
}

func (r *MongoArtistRepo) GetByID(ctx context.Context, id string) (*models.Artist, error) {
	return r.getOne(ctx, bson.M{"id": id})
}

func (r *MongoArtistRepo) GetByUserID(ctx context.Context, userID string) (*models.Artist, error) {
	return r.getOne(ctx, bson.M{"user_id": userID})
}

func (r *MongoArtistRepo) Update(ctx context.Context, artist *models.Artist) error {
	artist.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": artist.ID}, artist)
	if err != nil {
		return fmt.Errorf("failed to update artist %s: %w", artist.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoArtistRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete artist %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoArtistRepo) List(ctx context.Context, specialty string) ([]models.Artist, error) {
	filter := bson.M{}
	if specialty != "" {
		filter["specialties"] = specialty
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("failed to decode artists: %w", err)
	}
	return artists, nil
}

func (r *MongoArtistRepo) SetAvailability(ctx context.Context, artistID string, cfg *models.AvailabilityConfig) error {
	update := bson.M{"$set": bson.M{"availability": cfg, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": artistID}, update)
	if err != nil {
		return fmt.Errorf("failed to set availability for artist %s: %w", artistID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoArtistRepo) SetRating(ctx context.Context, artistID string, rating float64, count int) error {
	update := bson.M{"$set": bson.M{"rating": rating, "review_count": count, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": artistID}, update)
	if err != nil {
		return fmt.Errorf("failed to set rating for artist %s: %w", artistID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
