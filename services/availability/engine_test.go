package availability

import (
	"context"
	"sync"
	"testing"
	"time"

	artistRepo "glambook/database/repository/artist"
	bookingRepo "glambook/database/repository/booking"
	"glambook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArtists struct {
	artists map[string]*models.Artist
}

func (f *fakeArtists) Create(_ context.Context, a *models.Artist) error {
	f.artists[a.ID] = a
	return nil
}

func (f *fakeArtists) GetByID(_ context.Context, id string) (*models.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, artistRepo.ErrNotFound
	}
	return a, nil
}

func (f *fakeArtists) GetByUserID(_ context.Context, userID string) (*models.Artist, error) {
	for _, a := range f.artists {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, artistRepo.ErrNotFound
}

func (f *fakeArtists) Update(_ context.Context, a *models.Artist) error {
	f.artists[a.ID] = a
	return nil
}

func (f *fakeArtists) Delete(_ context.Context, id string) error {
	delete(f.artists, id)
	return nil
}

func (f *fakeArtists) List(_ context.Context, _ string) ([]models.Artist, error) {
	var out []models.Artist
	for _, a := range f.artists {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeArtists) SetAvailability(_ context.Context, id string, cfg *models.AvailabilityConfig) error {
	f.artists[id].Availability = cfg
	return nil
}

func (f *fakeArtists) SetRating(_ context.Context, id string, rating float64, count int) error {
	f.artists[id].Rating = rating
	f.artists[id].ReviewCount = count
	return nil
}

// fakeBookings mirrors the transactional guarantee of the mongo repository:
// Reserve checks overlap and inserts under one lock.
type fakeBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func isActive(s models.BookingStatus) bool {
	for _, a := range models.ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (f *fakeBookings) Reserve(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		existing := &f.bookings[i]
		if existing.ArtistID != b.ArtistID || !isActive(existing.Status) {
			continue
		}
		if existing.Overlaps(b.DateTime, b.End()) {
			return bookingRepo.ErrSlotTaken
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookings) ActiveInRange(_ context.Context, artistID string, from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for i := range f.bookings {
		b := f.bookings[i]
		if b.ArtistID == artistID && isActive(b.Status) && b.Overlaps(from, to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			f.bookings[i].UpdatedAt = time.Now().UTC()
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookings) CancelIfPending(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id && f.bookings[i].Status == models.BookingPending {
			f.bookings[i].Status = models.BookingCancelled
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) ListByArtist(_ context.Context, artistID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ArtistID == artistID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ListByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) HasCompleted(_ context.Context, customerID, artistID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.CustomerID == customerID && b.ArtistID == artistID && b.Status == models.BookingCompleted {
			return true, nil
		}
	}
	return false, nil
}

func newTestEngine(cfg *models.AvailabilityConfig) (*DefaultEngine, *fakeBookings) {
	artists := &fakeArtists{artists: map[string]*models.Artist{
		"artist-1": {
			ID:           "artist-1",
			UserID:       "user-1",
			Name:         "Ada",
			SessionPrice: 80,
			Availability: cfg,
		},
	}}
	bookings := &fakeBookings{}
	engine := &DefaultEngine{
		Artists:  artists,
		Bookings: bookings,
		Location: time.UTC,
	}
	return engine, bookings
}

// monday is 2025-06-02, a Monday, used as the anchor date throughout.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestComputeSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable artist yields no slots", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.IsAvailable = false
		engine, _ := newTestEngine(cfg)

		slots, err := engine.ComputeSlots(ctx, "artist-1", monday, monday)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("no config and no defaults yields no slots", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		slots, err := engine.ComputeSlots(ctx, "artist-1", monday, monday)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("no config falls back to injected defaults", func(t *testing.T) {
		engine, _ := newTestEngine(nil)
		engine.Defaults = DefaultConfig()

		slots, err := engine.ComputeSlots(ctx, "artist-1", monday, monday)
		require.NoError(t, err)
		// 10:00 to 24:00 in 30 minute sessions
		assert.Len(t, slots, 28)
	})

	t.Run("monday ten to noon with hour sessions", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		slots, err := engine.ComputeSlots(ctx, "artist-1", monday, monday)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "2025-06-02", slots[0].Date)
		assert.Equal(t, 600, slots[0].Start)
		assert.Equal(t, 660, slots[1].Start)
		assert.False(t, slots[0].Booked)
		assert.False(t, slots[1].Booked)
	})

	t.Run("non working days are skipped", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		// Saturday and Sunday before the anchor Monday.
		sat := monday.AddDate(0, 0, -2)
		slots, err := engine.ComputeSlots(ctx, "artist-1", sat, monday)
		require.NoError(t, err)
		for _, s := range slots {
			assert.Equal(t, "2025-06-02", s.Date)
		}
	})

	t.Run("multi day range is ordered by date then start", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		slots, err := engine.ComputeSlots(ctx, "artist-1", monday, monday.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.Len(t, slots, 4)
		assert.Equal(t, "2025-06-02", slots[0].Date)
		assert.Equal(t, "2025-06-02", slots[1].Date)
		assert.Equal(t, "2025-06-03", slots[2].Date)
		assert.Equal(t, "2025-06-03", slots[3].Date)
		assert.Less(t, slots[0].Start, slots[1].Start)
	})

	t.Run("reserved slot is marked booked", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		_, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10 * time.Hour),
		})
		require.NoError(t, err)

		slots, err := engine.ComputeSlots(ctx, "artist-1", monday, monday)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.True(t, slots[0].Booked)
		assert.False(t, slots[1].Booked)
	})

	t.Run("same day with inverted wall-clock times is a valid range", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		slots, err := engine.ComputeSlots(ctx, "artist-1", monday.Add(18*time.Hour), monday.Add(9*time.Hour))
		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("empty range is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		_, err := engine.ComputeSlots(ctx, "artist-1", monday, monday.AddDate(0, 0, -1))
		assert.Error(t, err)
	})

	t.Run("unknown artist", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		_, err := engine.ComputeSlots(ctx, "ghost", monday, monday)
		assert.Error(t, err)
	})
}

func TestReserveSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("valid reservation defaults to pending", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		booking, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:    "artist-1",
			CustomerID:  "cust-1",
			StartAt:     monday.Add(11 * time.Hour),
			ServiceType: "bridal",
		})
		require.NoError(t, err)
		assert.Equal(t, models.BookingPending, booking.Status)
		assert.Equal(t, 60, booking.Duration)
		assert.Equal(t, 80.0, booking.Price)
		assert.NotEmpty(t, booking.ID)
	})

	t.Run("confirm flag skips pending", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		booking, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10 * time.Hour),
			Confirm:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, models.BookingConfirmed, booking.Status)
	})

	t.Run("misaligned start is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		_, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10*time.Hour + 15*time.Minute),
		})
		assert.True(t, IsInvalidSlot(err))
	})

	t.Run("outside working hours is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		_, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(9 * time.Hour),
		})
		assert.True(t, IsInvalidSlot(err))
	})

	t.Run("non working day is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		sunday := monday.AddDate(0, 0, -1)
		_, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    sunday.Add(10 * time.Hour),
		})
		assert.True(t, IsInvalidSlot(err))
	})

	t.Run("sub minute precision is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())

		_, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10*time.Hour + 30*time.Second),
		})
		assert.True(t, IsInvalidSlot(err))
	})

	t.Run("unavailable artist is rejected", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.IsAvailable = false
		engine, _ := newTestEngine(cfg)

		_, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10 * time.Hour),
		})
		assert.True(t, IsInvalidSlot(err))
	})

	t.Run("no config and no defaults is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(nil)

		_, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10 * time.Hour),
		})
		assert.True(t, IsInvalidSlot(err))
	})

	t.Run("double reservation of the same slot conflicts", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())
		req := ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10 * time.Hour),
		}

		_, err := engine.ReserveSlot(ctx, req)
		require.NoError(t, err)

		req.CustomerID = "cust-2"
		_, err = engine.ReserveSlot(ctx, req)
		assert.True(t, IsConflict(err))
	})

	t.Run("concurrent reservations admit exactly one winner", func(t *testing.T) {
		engine, bookings := newTestEngine(weekdayConfig())
		req := ReserveRequest{
			ArtistID: "artist-1",
			StartAt:  monday.Add(10 * time.Hour),
		}

		const attempts = 8
		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				r := req
				r.CustomerID = string(rune('a' + n))
				_, err := engine.ReserveSlot(ctx, r)
				errs <- err
			}(i)
		}
		wg.Wait()
		close(errs)

		var wins, conflicts int
		for err := range errs {
			switch {
			case err == nil:
				wins++
			case IsConflict(err):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, attempts-1, conflicts)
		assert.Len(t, bookings.bookings, 1)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	reserve := func(t *testing.T, engine *DefaultEngine) *models.Booking {
		t.Helper()
		booking, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10 * time.Hour),
		})
		require.NoError(t, err)
		return booking
	}

	t.Run("pending booking cancels", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())
		booking := reserve(t, engine)

		cancelled, err := engine.Cancel(ctx, booking.ID, "cust-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, cancelled.Status)
	})

	t.Run("cancelling frees the slot for others", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())
		booking := reserve(t, engine)

		_, err := engine.Cancel(ctx, booking.ID, "cust-1")
		require.NoError(t, err)

		slots, err := engine.ComputeSlots(ctx, "artist-1", monday, monday)
		require.NoError(t, err)
		assert.False(t, slots[0].Booked)

		_, err = engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-2",
			StartAt:    monday.Add(10 * time.Hour),
		})
		assert.NoError(t, err)
	})

	t.Run("cancelling twice is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())
		booking := reserve(t, engine)

		_, err := engine.Cancel(ctx, booking.ID, "cust-1")
		require.NoError(t, err)

		_, err = engine.Cancel(ctx, booking.ID, "cust-1")
		assert.True(t, IsInvalidTransition(err))
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())
		booking := reserve(t, engine)

		_, err := engine.UpdateStatus(ctx, booking.ID, models.BookingConfirmed, false)
		require.NoError(t, err)
		_, err = engine.UpdateStatus(ctx, booking.ID, models.BookingCompleted, false)
		require.NoError(t, err)

		_, err = engine.Cancel(ctx, booking.ID, "admin-1")
		assert.True(t, IsInvalidTransition(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())
		_, err := engine.Cancel(ctx, "nope", "cust-1")
		assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(weekdayConfig())

	booking, err := engine.ReserveSlot(ctx, ReserveRequest{
		ArtistID:   "artist-1",
		CustomerID: "cust-1",
		StartAt:    monday.Add(10 * time.Hour),
	})
	require.NoError(t, err)

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		_, err := engine.UpdateStatus(ctx, booking.ID, models.BookingCompleted, false)
		assert.True(t, IsInvalidTransition(err))
	})

	t.Run("pending to confirmed to completed", func(t *testing.T) {
		updated, err := engine.UpdateStatus(ctx, booking.ID, models.BookingConfirmed, false)
		require.NoError(t, err)
		assert.Equal(t, models.BookingConfirmed, updated.Status)

		updated, err = engine.UpdateStatus(ctx, booking.ID, models.BookingCompleted, false)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCompleted, updated.Status)
	})

	t.Run("terminal transition needs force", func(t *testing.T) {
		_, err := engine.UpdateStatus(ctx, booking.ID, models.BookingCancelled, false)
		assert.True(t, IsInvalidTransition(err))

		updated, err := engine.UpdateStatus(ctx, booking.ID, models.BookingCancelled, true)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, updated.Status)
	})
}

func TestExpirePending(t *testing.T) {
	ctx := context.Background()

	t.Run("pending booking expires", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())
		booking, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10 * time.Hour),
		})
		require.NoError(t, err)

		fired, err := engine.ExpirePending(ctx, booking.ID)
		require.NoError(t, err)
		assert.True(t, fired)

		got, err := engine.Bookings.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, got.Status)
	})

	t.Run("confirmed booking is untouched", func(t *testing.T) {
		engine, _ := newTestEngine(weekdayConfig())
		booking, err := engine.ReserveSlot(ctx, ReserveRequest{
			ArtistID:   "artist-1",
			CustomerID: "cust-1",
			StartAt:    monday.Add(10 * time.Hour),
			Confirm:    true,
		})
		require.NoError(t, err)

		fired, err := engine.ExpirePending(ctx, booking.ID)
		require.NoError(t, err)
		assert.False(t, fired)

		got, err := engine.Bookings.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingConfirmed, got.Status)
	})
}
