package model

import "time"

// BookingLock is an advisory lock over one (turf, date) partition. It is held
// while a booking is checked and inserted, and expires on its own if the
// holder dies. Only the holder named by Owner may release it.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	Owner     string    `bson:"owner" json:"owner"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BookingPartition is bumped by every create transaction on its (turf, date),
// so two creates on the same partition write-conflict even without the lock.
type BookingPartition struct {
	ID        string    `bson:"_id" json:"id"`
	Version   int64     `bson:"version" json:"version"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
