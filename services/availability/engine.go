package availability

import (
	"context"
	"fmt"
	"time"

	artistRepo "glambook/database/repository/artist"
	bookingRepo "glambook/database/repository/booking"
	"glambook/models"
	"glambook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultConfig is the availability applied to artists who never configured
// their working hours. It exists only to keep listings functional for fresh
// profiles; it is injected explicitly into the engine, never applied
// silently elsewhere. Setting Engine.Defaults to nil makes "no config" mean
// "no availability" instead.
func DefaultConfig() *models.AvailabilityConfig {
	return &models.AvailabilityConfig{
		WorkingDays:          []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		StartTime:            "10:00",
		EndTime:              "24:00",
		SessionDuration:      30,
		BreakBetweenSessions: 0,
		IsAvailable:          true,
	}
}

// DefaultEngine implements Engine over the artist and booking repositories.
type DefaultEngine struct {
	Artists  artistRepo.ArtistRepository
	Bookings bookingRepo.BookingRepository

	// Defaults is the config used for artists without one. Nil means such
	// artists yield no slots.
	Defaults *models.AvailabilityConfig

	// Location is the platform timezone in which all wall-clock config is
	// interpreted.
	Location *time.Location
}

func (e *DefaultEngine) loc() *time.Location {
	if e.Location != nil {
		return e.Location
	}
	return time.UTC
}

// configFor resolves the effective availability config for an artist.
// A nil result means the artist yields no slots.
func (e *DefaultEngine) configFor(artist *models.Artist) *models.AvailabilityConfig {
	if artist.Availability != nil {
		return artist.Availability
	}
	return e.Defaults
}

func (e *DefaultEngine) ComputeSlots(ctx context.Context, artistID string, from, to time.Time) ([]models.Slot, error) {
	loc := e.loc()
	first := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	last := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)
	if last.Before(first) {
		return nil, fmt.Errorf("date range is empty: from %s after to %s", first.Format("2006-01-02"), last.Format("2006-01-02"))
	}

	artist, err := e.Artists.GetByID(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load artist: %w", err)
	}

	cfg := e.configFor(artist)
	if cfg == nil || !cfg.IsAvailable {
		return []models.Slot{}, nil
	}

	sched, err := parseSchedule(cfg)
	if err != nil {
		return nil, err
	}

	bookings, err := e.Bookings.ActiveInRange(ctx, artistID, first, last.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	slots := []models.Slot{}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !sched.worksOn(day.Weekday()) {
			continue
		}
		daySlots := sched.daySlots(day.Format("2006-01-02"))
		markBooked(daySlots, day, loc, bookings)
		slots = append(slots, daySlots...)
	}
	return slots, nil
}

func (e *DefaultEngine) ReserveSlot(ctx context.Context, req ReserveRequest) (*models.Booking, error) {
	artist, err := e.Artists.GetByID(ctx, req.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load artist: %w", err)
	}

	cfg := e.configFor(artist)
	if cfg == nil {
		return nil, NewInvalidSlotError("artist %s has no availability configured", req.ArtistID)
	}
	if !cfg.IsAvailable {
		return nil, NewInvalidSlotError("artist %s is not accepting bookings", req.ArtistID)
	}

	sched, err := parseSchedule(cfg)
	if err != nil {
		return nil, err
	}

	local := req.StartAt.In(e.loc())
	if local.Second() != 0 || local.Nanosecond() != 0 {
		return nil, NewInvalidSlotError("requested time %s is not on a slot boundary", local.Format(time.RFC3339))
	}
	if !sched.worksOn(local.Weekday()) {
		return nil, NewInvalidSlotError("%s is not a working day for artist %s", local.Weekday(), req.ArtistID)
	}
	minute := local.Hour()*60 + local.Minute()
	if !sched.aligned(minute) {
		return nil, NewInvalidSlotError("requested time %02d:%02d does not align to a slot boundary", local.Hour(), local.Minute())
	}

	status := models.BookingPending
	if req.Confirm {
		status = models.BookingConfirmed
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:          uuid.New().String(),
		ArtistID:    req.ArtistID,
		CustomerID:  req.CustomerID,
		DateTime:    local,
		Duration:    sched.session,
		ServiceType: req.ServiceType,
		Status:      status,
		Price:       artist.SessionPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The repository re-checks overlap and inserts inside one transaction;
	// a stale ComputeSlots view can never leak into a double booking.
	if err := e.Bookings.Reserve(ctx, booking); err != nil {
		if err == bookingRepo.ErrSlotTaken {
			return nil, NewConflictError("slot %s is already booked", local.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	utils.GetLogger().Info("slot reserved",
		zap.String("bookingID", booking.ID),
		zap.String("artistID", booking.ArtistID),
		zap.Time("dateTime", booking.DateTime),
	)
	return booking, nil
}

func (e *DefaultEngine) Cancel(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	booking, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, NewInvalidTransitionError("booking %s is already %s", bookingID, booking.Status)
	}

	updated, err := e.Bookings.UpdateStatus(ctx, bookingID, models.BookingCancelled)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", bookingID),
		zap.String("actorID", actorID),
	)
	return updated, nil
}

func (e *DefaultEngine) UpdateStatus(ctx context.Context, bookingID string, next models.BookingStatus, force bool) (*models.Booking, error) {
	booking, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransition(next) {
		if !force {
			return nil, NewInvalidTransitionError("cannot move booking %s from %s to %s", bookingID, booking.Status, next)
		}
		utils.GetLogger().Warn("forced status override on terminal booking",
			zap.String("bookingID", bookingID),
			zap.String("from", string(booking.Status)),
			zap.String("to", string(next)),
		)
	}

	return e.Bookings.UpdateStatus(ctx, bookingID, next)
}

func (e *DefaultEngine) ExpirePending(ctx context.Context, bookingID string) (bool, error) {
	return e.Bookings.CancelIfPending(ctx, bookingID)
}
