package bookingRepo

import (
	"context"
	"errors"
	"time"

	"glambook/models"
)

// ErrSlotTaken is returned by Reserve when another active booking already
// occupies an overlapping interval for the same artist.
var ErrSlotTaken = errors.New("slot already taken")

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Reserve inserts the booking only if no active booking of the same
	// artist overlaps its interval. The check and the insert run inside a
	// single transaction; a partial unique index on (artist_id, date_time)
	// backs it up for exact-time races.
	Reserve(ctx context.Context, booking *models.Booking) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// ActiveInRange returns the artist's bookings with an active status
	// whose interval intersects [from, to).
	ActiveInRange(ctx context.Context, artistID string, from, to time.Time) ([]models.Booking, error)

	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)

	// CancelIfPending moves the booking to CANCELLED only when it is still
	// PENDING. Used by the expiry worker; reports whether it fired.
	CancelIfPending(ctx context.Context, id string) (bool, error)

	ListByArtist(ctx context.Context, artistID string) ([]models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)

	// HasCompleted reports whether the customer holds at least one
	// COMPLETED booking with the artist.
	HasCompleted(ctx context.Context, customerID, artistID string) (bool, error)
}
