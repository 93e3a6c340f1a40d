package review

import (
	"context"

	"glambook/models"
)

// ReviewService manages artist reviews. A review may only be created by a
// customer holding a COMPLETED booking with the artist.
type ReviewService interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	ListByArtist(ctx context.Context, artistID string) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
}
