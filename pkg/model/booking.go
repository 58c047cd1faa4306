package model

import (
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses that hold a slot.
var ActiveStatuses = []BookingStatus{StatusPending, StatusConfirmed}

func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

type Booking struct {
	ID            string        `json:"id" bson:"_id"`
	TurfID        string        `json:"turf_id" bson:"turf_id"`
	RequesterID   string        `json:"requester_id" bson:"requester_id"`
	GuestName     string        `json:"guest_name,omitempty" bson:"guest_name"`
	GuestContact  string        `json:"guest_contact,omitempty" bson:"guest_contact"`
	Date          string        `json:"date" bson:"date"`
	StartTime     int           `json:"start_time" bson:"start_time"`
	DurationHours int           `json:"duration_hours" bson:"duration_hours"`
	Status        BookingStatus `json:"status" bson:"status"`
	TotalPrice    int64         `json:"total_price" bson:"total_price"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

func (b *Booking) Slot() Slot {
	return Slot{Date: b.Date, StartTime: b.StartTime, DurationHours: b.DurationHours}
}

func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// Clone returns a shallow copy; Booking has no reference fields.
func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

// CreateBookingInput is the payload accepted by the checkout flow.
// Price is optional: when zero it is derived from the turf's hourly rate.
type CreateBookingInput struct {
	TurfID        string `json:"turf_id" validate:"required,max=64"`
	RequesterID   string `json:"requester_id" validate:"required,max=64"`
	GuestName     string `json:"guest_name" validate:"required,min=2,max=100"`
	GuestContact  string `json:"guest_contact" validate:"required,min=5,max=32"`
	Date          string `json:"date" validate:"required,iso_date"`
	StartTime     int    `json:"start_time" validate:"min=0,max=23"`
	DurationHours int    `json:"duration_hours" validate:"required,min=1,max=24"`
	Price         int64  `json:"price,omitempty" validate:"omitempty,min=0"`
}

func (in *CreateBookingInput) Slot() Slot {
	return Slot{Date: in.Date, StartTime: in.StartTime, DurationHours: in.DurationHours}
}

// BookingFilter narrows dashboard listings.
type BookingFilter struct {
	Status BookingStatus
	Query  string
}

type BookingStats struct {
	Total     int   `json:"total"`
	Pending   int   `json:"pending"`
	Confirmed int   `json:"confirmed"`
	Cancelled int   `json:"cancelled"`
	Revenue   int64 `json:"revenue"`
}
