package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	t.Run("pending", func(t *testing.T) {
		assert.True(t, BookingPending.CanTransition(BookingConfirmed))
		assert.True(t, BookingPending.CanTransition(BookingCancelled))
		assert.False(t, BookingPending.CanTransition(BookingCompleted))
	})

	t.Run("confirmed", func(t *testing.T) {
		assert.True(t, BookingConfirmed.CanTransition(BookingCompleted))
		assert.True(t, BookingConfirmed.CanTransition(BookingCancelled))
		assert.False(t, BookingConfirmed.CanTransition(BookingPending))
	})

	t.Run("terminal states allow nothing", func(t *testing.T) {
		for _, terminal := range []BookingStatus{BookingCompleted, BookingCancelled} {
			assert.True(t, terminal.IsTerminal())
			for _, next := range []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled} {
				assert.False(t, terminal.CanTransition(next), "%s -> %s", terminal, next)
			}
		}
	})

	t.Run("active statuses exclude cancelled", func(t *testing.T) {
		assert.NotContains(t, ActiveStatuses, BookingCancelled)
		assert.Contains(t, ActiveStatuses, BookingPending)
		assert.Contains(t, ActiveStatuses, BookingConfirmed)
		assert.Contains(t, ActiveStatuses, BookingCompleted)
	})
}

func TestBookingOverlaps(t *testing.T) {
	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	b := Booking{DateTime: at, Duration: 60}

	assert.Equal(t, at.Add(time.Hour), b.End())

	t.Run("identical interval", func(t *testing.T) {
		assert.True(t, b.Overlaps(at, at.Add(time.Hour)))
	})

	t.Run("partial overlap", func(t *testing.T) {
		assert.True(t, b.Overlaps(at.Add(30*time.Minute), at.Add(90*time.Minute)))
		assert.True(t, b.Overlaps(at.Add(-30*time.Minute), at.Add(30*time.Minute)))
	})

	t.Run("containment", func(t *testing.T) {
		assert.True(t, b.Overlaps(at.Add(-time.Hour), at.Add(2*time.Hour)))
		assert.True(t, b.Overlaps(at.Add(15*time.Minute), at.Add(45*time.Minute)))
	})

	t.Run("adjacent intervals do not overlap", func(t *testing.T) {
		assert.False(t, b.Overlaps(at.Add(time.Hour), at.Add(2*time.Hour)))
		assert.False(t, b.Overlaps(at.Add(-time.Hour), at))
	})
}
