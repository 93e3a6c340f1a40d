package availability

import (
	"time"

	"glambook/models"
)

// schedule is a parsed, minutes-from-midnight view of an availability
// config. All slot math happens here so it stays deterministic and free of
// database access.
type schedule struct {
	start   int // first slot start
	end     int // no slot may end after this
	session int // slot length
	gap     int // mandatory break after each session
	days    []time.Weekday
}

func parseSchedule(cfg *models.AvailabilityConfig) (schedule, error) {
	if err := cfg.Validate(); err != nil {
		return schedule{}, NewConfigurationError("invalid availability config: %v", err)
	}
	start, _ := models.ParseClock(cfg.StartTime)
	end, _ := models.ParseClock(cfg.EndTime)
	return schedule{
		start:   start,
		end:     end,
		session: cfg.SessionDuration,
		gap:     cfg.BreakBetweenSessions,
		days:    cfg.WorkingDays,
	}, nil
}

func (s schedule) worksOn(day time.Weekday) bool {
	for _, d := range s.days {
		if d == day {
			return true
		}
	}
	return false
}

// stride is the distance between consecutive slot starts.
func (s schedule) stride() int {
	return s.session + s.gap
}

// daySlots generates the slots for one calendar date: consecutive sessions
// from the start bound, advancing by session+gap, until the next slot's end
// would pass the end bound.
func (s schedule) daySlots(date string) []models.Slot {
	var slots []models.Slot
	for start := s.start; start+s.session <= s.end; start += s.stride() {
		slots = append(slots, models.Slot{
			Date:  date,
			Start: start,
			End:   start + s.session,
		})
	}
	return slots
}

// aligned reports whether a start minute falls exactly on a generated slot
// boundary and the full session fits before the end bound.
func (s schedule) aligned(minute int) bool {
	if minute < s.start || minute+s.session > s.end {
		return false
	}
	return (minute-s.start)%s.stride() == 0
}

// slotInterval converts a slot to its absolute half-open interval in loc.
func slotInterval(day time.Time, slot models.Slot, loc *time.Location) (time.Time, time.Time) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	start := midnight.Add(time.Duration(slot.Start) * time.Minute)
	end := midnight.Add(time.Duration(slot.End) * time.Minute)
	return start, end
}

// markBooked tags each slot whose interval overlaps any of the bookings.
// The overlap test is slotStart < bookingEnd && bookingStart < slotEnd.
func markBooked(slots []models.Slot, day time.Time, loc *time.Location, bookings []models.Booking) {
	for i := range slots {
		start, end := slotInterval(day, slots[i], loc)
		for j := range bookings {
			if bookings[j].Overlaps(start, end) {
				slots[i].Booked = true
				break
			}
		}
	}
}
