package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	// ErrStatusConflict means a compare-and-swap on status found the booking
	// in a status outside the expected set.
	ErrStatusConflict = errors.New("booking status changed concurrently")

	ErrSlotTaken = errors.New("slot overlaps an active booking")

	ErrDuplicateID = errors.New("booking id already exists")

	// ErrLockTimeout means the partition lock could not be taken before the
	// request context expired.
	ErrLockTimeout = errors.New("timed out waiting for booking partition lock")
)
