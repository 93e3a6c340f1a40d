package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// ActiveStatuses are the statuses that occupy a slot. CANCELLED bookings
// free their slot immediately.
var ActiveStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted}

// IsTerminal reports whether no further transition is allowed from s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransition reports whether the status may move from s to next.
// PENDING -> {CONFIRMED, CANCELLED}; CONFIRMED -> {COMPLETED, CANCELLED}.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted || next == BookingCancelled
	}
	return false
}

// Booking represents one appointment record. It occupies the half-open
// interval [DateTime, DateTime+Duration) for its artist.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	ArtistID    string        `bson:"artist_id" json:"artistId"`
	CustomerID  string        `bson:"customer_id" json:"customerId"`
	DateTime    time.Time     `bson:"date_time" json:"dateTime"`
	Duration    int           `bson:"duration" json:"duration"` // minutes
	ServiceType string        `bson:"service_type" json:"serviceType"`
	Status      BookingStatus `bson:"status" json:"status"`
	Price       float64       `bson:"price" json:"price"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// End returns the exclusive end instant of the booking interval.
func (b *Booking) End() time.Time {
	return b.DateTime.Add(time.Duration(b.Duration) * time.Minute)
}

// Overlaps reports whether the booking interval intersects [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.End()) && b.DateTime.Before(end)
}
