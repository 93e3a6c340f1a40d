package models

import (
	"fmt"
	"time"
)

// AvailabilityConfig is an artist's working-hours setup. It is stored as a
// single embedded document on the artist record and replaced wholesale on
// every update (no partial merge).
type AvailabilityConfig struct {
	WorkingDays          []time.Weekday `bson:"working_days" json:"workingDays"`                    // weekdays on which the artist accepts bookings
	StartTime            string         `bson:"start_time" json:"startTime"`                        // wall-clock "HH:MM", platform timezone
	EndTime              string         `bson:"end_time" json:"endTime"`                            // wall-clock "HH:MM"; "24:00" means end of day
	SessionDuration      int            `bson:"session_duration" json:"sessionDuration"`            // minutes per appointment
	BreakBetweenSessions int            `bson:"break_between_sessions" json:"breakBetweenSessions"` // minutes of gap after each session
	IsAvailable          bool           `bson:"is_available" json:"isAvailable"`
}

// ParseClock converts a "HH:MM" wall-clock string to minutes from midnight.
// "24:00" is accepted as the end-of-day bound.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// Validate checks the config invariants: start before end, positive session
// duration, non-negative break, at least one working day.
func (c *AvailabilityConfig) Validate() error {
	start, err := ParseClock(c.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(c.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("startTime %q must be before endTime %q", c.StartTime, c.EndTime)
	}
	if c.SessionDuration <= 0 {
		return fmt.Errorf("sessionDuration must be positive, got %d", c.SessionDuration)
	}
	if c.BreakBetweenSessions < 0 {
		return fmt.Errorf("breakBetweenSessions must not be negative, got %d", c.BreakBetweenSessions)
	}
	if len(c.WorkingDays) == 0 {
		return fmt.Errorf("workingDays must not be empty")
	}
	for _, d := range c.WorkingDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("invalid weekday %d", d)
		}
	}
	return nil
}

// WorksOn reports whether the artist accepts bookings on the given weekday.
func (c *AvailabilityConfig) WorksOn(day time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}
