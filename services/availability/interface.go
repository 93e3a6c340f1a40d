package availability

import (
	"context"
	"time"

	"glambook/models"
)

// ReserveRequest carries a candidate reservation. StartAt is an absolute
// instant; the engine re-derives the artist's slot boundaries and never
// trusts the caller's notion of slot legitimacy.
type ReserveRequest struct {
	ArtistID    string
	CustomerID  string
	StartAt     time.Time
	ServiceType string
	// Confirm creates the booking directly in CONFIRMED instead of PENDING.
	Confirm bool
}

// Engine derives bookable slots from an artist's working-hours config and
// existing bookings, and guards reservations against double-booking.
type Engine interface {
	// ComputeSlots returns every candidate slot between the from and to
	// dates inclusive, ordered by date then start time, each tagged booked
	// or available. Read-only and idempotent.
	ComputeSlots(ctx context.Context, artistID string, from, to time.Time) ([]models.Slot, error)

	// ReserveSlot validates the requested instant against the artist's
	// current config and inserts the booking atomically with respect to
	// concurrent reservation attempts.
	ReserveSlot(ctx context.Context, req ReserveRequest) (*models.Booking, error)

	// Cancel moves a non-terminal booking to CANCELLED, freeing its slot
	// immediately.
	Cancel(ctx context.Context, bookingID, actorID string) (*models.Booking, error)

	// UpdateStatus drives the remaining lifecycle transitions. Terminal
	// overrides are rejected unless force is set (admin flow).
	UpdateStatus(ctx context.Context, bookingID string, next models.BookingStatus, force bool) (*models.Booking, error)

	// ExpirePending cancels the booking if it is still PENDING. Used by
	// the background expiry worker; reports whether it fired.
	ExpirePending(ctx context.Context, bookingID string) (bool, error)
}
