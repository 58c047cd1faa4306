package model

import "fmt"

const HoursPerDay = 24

// Slot is a run of whole hours on one calendar date. Dates are compared as
// plain strings; no time zone handling is applied.
type Slot struct {
	Date          string `json:"date"`
	StartTime     int    `json:"start_time"`
	DurationHours int    `json:"duration_hours"`
}

// End is the first hour after the slot.
func (s Slot) End() int {
	return s.StartTime + s.DurationHours
}

// Overlaps reports whether both slots share the date and at least one hour.
func (s Slot) Overlaps(other Slot) bool {
	if s.Date != other.Date {
		return false
	}
	return s.StartTime < other.End() && other.StartTime < s.End()
}

func (s Slot) Valid() bool {
	return s.StartTime >= 0 && s.StartTime < HoursPerDay && s.DurationHours > 0 && s.End() <= HoursPerDay
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %02d:00-%02d:00", s.Date, s.StartTime, s.End())
}

// HourSlot is one cell of a turf's daily grid.
type HourSlot struct {
	Hour   int  `json:"hour"`
	Booked bool `json:"booked"`
}
