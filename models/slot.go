package models

import "fmt"

// Slot is a derived candidate appointment interval on one calendar date.
// Slots are regenerated on every query and never persisted.
type Slot struct {
	Date   string `json:"date"`  // "2006-01-02"
	Start  int    `json:"start"` // minutes from midnight
	End    int    `json:"end"`   // minutes from midnight
	Booked bool   `json:"booked"`
}

// Label renders the slot bounds as "HH:MM - HH:MM" for display.
func (s Slot) Label() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", s.Start/60, s.Start%60, s.End/60, s.End%60)
}
