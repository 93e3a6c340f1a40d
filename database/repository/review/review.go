package reviewRepo

import (
	"context"
	"errors"

	"glambook/models"
)

// ErrNotFound is returned when no review matches the given id.
var ErrNotFound = errors.New("review not found")

// ReviewRepository defines the persistence operations for artist reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	ListByArtist(ctx context.Context, artistID string) ([]models.Review, error)
	Delete(ctx context.Context, id string) error

	// Aggregate returns the artist's average rating and review count.
	Aggregate(ctx context.Context, artistID string) (avg float64, count int, err error)

	// ExistsFor reports whether the customer already reviewed the artist.
	ExistsFor(ctx context.Context, customerID, artistID string) (bool, error)
}
