package artist

import (
	"context"
	"time"

	artistRepo "glambook/database/repository/artist"
	"glambook/models"
	"glambook/services/availability"
	"glambook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultArtistService implements ArtistService over the artist repository.
type DefaultArtistService struct {
	Repo artistRepo.ArtistRepository
}

func (s *DefaultArtistService) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	now := time.Now().UTC()
	artist.ID = uuid.New().String()
	artist.Rating = 0
	artist.ReviewCount = 0
	artist.CreatedAt = now
	artist.UpdatedAt = now

	if artist.Availability != nil {
		if err := artist.Availability.Validate(); err != nil {
			return nil, availability.NewConfigurationError("invalid availability config: %v", err)
		}
	}

	if err := s.Repo.Create(ctx, artist); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("artist profile created", zap.String("artistID", artist.ID))
	return artist, nil
}

func (s *DefaultArtistService) GetByID(ctx context.Context, id string) (*models.Artist, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultArtistService) GetByUserID(ctx context.Context, userID string) (*models.Artist, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

func (s *DefaultArtistService) Update(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := s.Repo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *DefaultArtistService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultArtistService) List(ctx context.Context, specialty string) ([]models.Artist, error) {
	return s.Repo.List(ctx, specialty)
}

func (s *DefaultArtistService) SetAvailability(ctx context.Context, artistID string, cfg models.AvailabilityConfig) error {
	if err := cfg.Validate(); err != nil {
		return availability.NewConfigurationError("invalid availability config: %v", err)
	}
	if err := s.Repo.SetAvailability(ctx, artistID, &cfg); err != nil {
		return err
	}
	utils.GetLogger().Info("availability config replaced", zap.String("artistID", artistID))
	return nil
}
