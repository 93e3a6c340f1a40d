package review

import (
	"context"
	"fmt"
	"time"

	artistRepo "glambook/database/repository/artist"
	bookingRepo "glambook/database/repository/booking"
	reviewRepo "glambook/database/repository/review"
	"glambook/models"
	"glambook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReviewService implements ReviewService over the review, booking
// and artist repositories.
type DefaultReviewService struct {
	Reviews  reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
	Artists  artistRepo.ArtistRepository
}

func (s *DefaultReviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	completed, err := s.Bookings.HasCompleted(ctx, review.CustomerID, review.ArtistID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, fmt.Errorf("only customers with a completed booking may review this artist")
	}

	exists, err := s.Reviews.ExistsFor(ctx, review.CustomerID, review.ArtistID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("customer has already reviewed this artist")
	}

	review.ID = uuid.New().String()
	review.CreatedAt = time.Now().UTC()
	if err := s.Reviews.Insert(ctx, review); err != nil {
		return nil, err
	}

	if err := s.refreshAggregate(ctx, review.ArtistID); err != nil {
		utils.GetLogger().Warn("failed to refresh artist rating", zap.Error(err))
	}
	return review, nil
}

func (s *DefaultReviewService) ListByArtist(ctx context.Context, artistID string) ([]models.Review, error) {
	return s.Reviews.ListByArtist(ctx, artistID)
}

func (s *DefaultReviewService) Delete(ctx context.Context, id string) error {
	review, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Reviews.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.refreshAggregate(ctx, review.ArtistID); err != nil {
		utils.GetLogger().Warn("failed to refresh artist rating", zap.Error(err))
	}
	return nil
}

func (s *DefaultReviewService) refreshAggregate(ctx context.Context, artistID string) error {
	avg, count, err := s.Reviews.Aggregate(ctx, artistID)
	if err != nil {
		return err
	}
	return s.Artists.SetRating(ctx, artistID, avg, count)
}
