package repository

import (
	"context"
	"time"
	mongotx "turfly/pkg/db/mongo"
	"turfly/pkg/model"
)

const (
	CollectionName          = "Bookings"
	LockCollectionName      = "Booking_locks"
	PartitionCollectionName = "Booking_partitions"
)

// BookingRepository is the booking store. Implementations must make every
// successful write visible to reads that start after it returns.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	// FindActiveByPartition returns the pending and confirmed bookings of one
	// turf on one date, read from a single consistent snapshot.
	FindActiveByPartition(ctx context.Context, turfID, date string) ([]*model.Booking, error)
	FindAll(ctx context.Context) ([]*model.Booking, error)
	FindByRequester(ctx context.Context, requesterID string) ([]*model.Booking, error)
	FindByTurfs(ctx context.Context, turfIDs []string) ([]*model.Booking, error)
	// UpdateStatus sets status to `to` only if the current status is one of
	// `from`. On ErrStatusConflict the current record is returned alongside
	// the error.
	UpdateStatus(ctx context.Context, id string, from []model.BookingStatus, to model.BookingStatus) (*model.Booking, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	// GuardPartition records a write on the (turf, date) partition inside the
	// current transaction. Two transactions guarding the same partition cannot
	// both commit.
	GuardPartition(ctx context.Context, turfID, date string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
	Ping(ctx context.Context) error
}

// BookingLockRepository serialises booking creation per (turf, date).
// Acquire returns an owner token; Release only frees the lock while that
// owner still holds it.
type BookingLockRepository interface {
	Acquire(ctx context.Context, lockID string, ttl time.Duration) (string, error)
	Release(ctx context.Context, lockID, owner string) error
}

func LockID(turfID, date string) string {
	return "booking_lock_" + turfID + "_" + date
}

func partitionKey(turfID, date string) string {
	return turfID + "|" + date
}

func containsStatus(set []model.BookingStatus, s model.BookingStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
