package availability

import (
	"context"
	"fmt"
	"turfly/internal/bookings/repository"
	"turfly/pkg/model"
)

// FindConflict returns the first active booking whose range intersects slot,
// or nil if there is none.
func FindConflict(existing []*model.Booking, slot model.Slot) *model.Booking {
	for _, b := range existing {
		if b.IsActive() && b.Slot().Overlaps(slot) {
			return b
		}
	}
	return nil
}

type Checker struct {
	repo        repository.BookingRepository
	openingHour int
	closingHour int
}

func NewChecker(repo repository.BookingRepository, openingHour, closingHour int) *Checker {
	return &Checker{
		repo:        repo,
		openingHour: openingHour,
		closingHour: closingHour,
	}
}

// IsAvailable reports whether the slot is free on the turf. The error only
// carries store failures.
func (c *Checker) IsAvailable(ctx context.Context, turfID, date string, startTime, durationHours int) (bool, error) {
	active, err := c.repo.FindActiveByPartition(ctx, turfID, date)
	if err != nil {
		return false, fmt.Errorf("failed to read bookings for %s on %s: %w", turfID, date, err)
	}

	slot := model.Slot{Date: date, StartTime: startTime, DurationHours: durationHours}
	return FindConflict(active, slot) == nil, nil
}

// DaySlots returns one cell per opening hour with its booked flag.
func (c *Checker) DaySlots(ctx context.Context, turfID, date string) ([]model.HourSlot, error) {
	active, err := c.repo.FindActiveByPartition(ctx, turfID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings for %s on %s: %w", turfID, date, err)
	}

	slots := make([]model.HourSlot, 0, c.closingHour-c.openingHour)
	for hour := c.openingHour; hour < c.closingHour; hour++ {
		cell := model.Slot{Date: date, StartTime: hour, DurationHours: 1}
		slots = append(slots, model.HourSlot{
			Hour:   hour,
			Booked: FindConflict(active, cell) != nil,
		})
	}
	return slots, nil
}
