package review

import (
	"context"
	"testing"
	"time"

	bookingRepo "glambook/database/repository/booking"
	reviewRepo "glambook/database/repository/review"
	"glambook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviews struct {
	reviews []models.Review
}

func (f *fakeReviews) Insert(_ context.Context, r *models.Review) error {
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeReviews) GetByID(_ context.Context, id string) (*models.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			r := f.reviews[i]
			return &r, nil
		}
	}
	return nil, reviewRepo.ErrNotFound
}

func (f *fakeReviews) ListByArtist(_ context.Context, artistID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ArtistID == artistID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) Delete(_ context.Context, id string) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return reviewRepo.ErrNotFound
}

func (f *fakeReviews) Aggregate(_ context.Context, artistID string) (float64, int, error) {
	var sum, count int
	for _, r := range f.reviews {
		if r.ArtistID == artistID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (f *fakeReviews) ExistsFor(_ context.Context, customerID, artistID string) (bool, error) {
	for _, r := range f.reviews {
		if r.CustomerID == customerID && r.ArtistID == artistID {
			return true, nil
		}
	}
	return false, nil
}

// fakeCompletions stubs the single booking query the review flow needs.
type fakeCompletions struct {
	bookingRepo.BookingRepository
	completed map[string]bool // customerID|artistID
}

func (f *fakeCompletions) HasCompleted(_ context.Context, customerID, artistID string) (bool, error) {
	return f.completed[customerID+"|"+artistID], nil
}

type fakeRatings struct {
	ratings map[string]float64
	counts  map[string]int
}

func (f *fakeRatings) Create(_ context.Context, _ *models.Artist) error { return nil }
func (f *fakeRatings) GetByID(_ context.Context, _ string) (*models.Artist, error) {
	return nil, nil
}
func (f *fakeRatings) GetByUserID(_ context.Context, _ string) (*models.Artist, error) {
	return nil, nil
}
func (f *fakeRatings) Update(_ context.Context, _ *models.Artist) error { return nil }
func (f *fakeRatings) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeRatings) List(_ context.Context, _ string) ([]models.Artist, error) {
	return nil, nil
}
func (f *fakeRatings) SetAvailability(_ context.Context, _ string, _ *models.AvailabilityConfig) error {
	return nil
}

func (f *fakeRatings) SetRating(_ context.Context, artistID string, rating float64, count int) error {
	f.ratings[artistID] = rating
	f.counts[artistID] = count
	return nil
}

func newTestService(completed map[string]bool) (*DefaultReviewService, *fakeReviews, *fakeRatings) {
	reviews := &fakeReviews{}
	ratings := &fakeRatings{ratings: map[string]float64{}, counts: map[string]int{}}
	svc := &DefaultReviewService{
		Reviews:  reviews,
		Bookings: &fakeCompletions{completed: completed},
		Artists:  ratings,
	}
	return svc, reviews, ratings
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a completed booking", func(t *testing.T) {
		svc, reviews, _ := newTestService(map[string]bool{})

		_, err := svc.Create(ctx, &models.Review{ArtistID: "a1", CustomerID: "c1", Rating: 5})
		assert.Error(t, err)
		assert.Empty(t, reviews.reviews)
	})

	t.Run("completed booking allows the review", func(t *testing.T) {
		svc, reviews, ratings := newTestService(map[string]bool{"c1|a1": true})

		created, err := svc.Create(ctx, &models.Review{ArtistID: "a1", CustomerID: "c1", Rating: 4, Comment: "lovely"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Len(t, reviews.reviews, 1)
		assert.Equal(t, 4.0, ratings.ratings["a1"])
		assert.Equal(t, 1, ratings.counts["a1"])
	})

	t.Run("one review per customer per artist", func(t *testing.T) {
		svc, _, _ := newTestService(map[string]bool{"c1|a1": true})

		_, err := svc.Create(ctx, &models.Review{ArtistID: "a1", CustomerID: "c1", Rating: 4})
		require.NoError(t, err)

		_, err = svc.Create(ctx, &models.Review{ArtistID: "a1", CustomerID: "c1", Rating: 2})
		assert.Error(t, err)
	})

	t.Run("rating bounds", func(t *testing.T) {
		svc, _, _ := newTestService(map[string]bool{"c1|a1": true})

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(ctx, &models.Review{ArtistID: "a1", CustomerID: "c1", Rating: rating})
			assert.Error(t, err, "rating %d", rating)
		}
	})

	t.Run("aggregate tracks the running average", func(t *testing.T) {
		svc, _, ratings := newTestService(map[string]bool{"c1|a1": true, "c2|a1": true})

		_, err := svc.Create(ctx, &models.Review{ArtistID: "a1", CustomerID: "c1", Rating: 5})
		require.NoError(t, err)
		_, err = svc.Create(ctx, &models.Review{ArtistID: "a1", CustomerID: "c2", Rating: 2})
		require.NoError(t, err)

		assert.InDelta(t, 3.5, ratings.ratings["a1"], 0.0001)
		assert.Equal(t, 2, ratings.counts["a1"])
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	svc, reviews, ratings := newTestService(map[string]bool{"c1|a1": true})

	created, err := svc.Create(ctx, &models.Review{ArtistID: "a1", CustomerID: "c1", Rating: 5, CreatedAt: time.Now()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, reviews.reviews)
	assert.Equal(t, 0.0, ratings.ratings["a1"])
	assert.Equal(t, 0, ratings.counts["a1"])
}
