package artist

import (
	"context"

	"glambook/models"
)

// ArtistService manages artist profiles and their availability config.
type ArtistService interface {
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	GetByID(ctx context.Context, id string) (*models.Artist, error)
	GetByUserID(ctx context.Context, userID string) (*models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, specialty string) ([]models.Artist, error)

	// SetAvailability validates the config and replaces the artist's
	// previous one wholesale.
	SetAvailability(ctx context.Context, artistID string, cfg models.AvailabilityConfig) error
}
