package artistRepo

import (
	"context"
	"errors"

	"glambook/models"
)

// ErrNotFound is returned when no artist matches the given id.
var ErrNotFound = errors.New("artist not found")

// ArtistRepository defines the persistence operations for artist profiles.
type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id string) (*models.Artist, error)
	GetByUserID(ctx context.Context, userID string) (*models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, specialty string) ([]models.Artist, error)

	// SetAvailability replaces the artist's embedded availability config
	// wholesale; no partial merge.
	SetAvailability(ctx context.Context, artistID string, cfg *models.AvailabilityConfig) error

	// SetRating stores the recomputed review aggregate.
	SetRating(ctx context.Context, artistID string, rating float64, count int) error
}
