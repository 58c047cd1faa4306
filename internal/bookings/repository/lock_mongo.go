package repository

import (
	"context"
	"fmt"
	"time"
	bookingserrors "turfly/internal/bookings/errors"
	"turfly/pkg/config"
	"turfly/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	lockRetryInitial = 5 * time.Millisecond
	lockRetryMax     = 100 * time.Millisecond
)

// lockCollection is the part of *mongo.Collection the lock uses.
type lockCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type mongoBookingLockRepository struct {
	cfg        *config.Config
	collection lockCollection
}

func NewMongoBookingLockRepository(cfg *config.Config) BookingLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingLockRepository{
		cfg:        cfg,
		collection: db.Collection(LockCollectionName),
	}
}

// Acquire inserts the lock document and retries on duplicate key until ctx
// is done. A lock past its expiry is removed before retrying, so a crashed
// holder blocks the partition for at most ttl.
func (r *mongoBookingLockRepository) Acquire(ctx context.Context, lockID string, ttl time.Duration) (string, error) {
	owner := uuid.NewString()
	backoff := lockRetryInitial
	for {
		now := time.Now().UTC()
		lock := &model.BookingLock{
			ID:        lockID,
			Owner:     owner,
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
		}

		insertCtx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
		_, err := r.collection.InsertOne(insertCtx, lock)
		cancel()
		if err == nil {
			return owner, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			if ctx.Err() != nil {
				return "", fmt.Errorf("%w: %s", bookingserrors.ErrLockTimeout, lockID)
			}
			return "", fmt.Errorf("failed to acquire booking lock: %w", err)
		}

		if err := r.stealExpired(ctx, lockID, now); err != nil && ctx.Err() == nil {
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %s", bookingserrors.ErrLockTimeout, lockID)
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, lockRetryMax)
	}
}

func (r *mongoBookingLockRepository) stealExpired(ctx context.Context, lockID string, now time.Time) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{"_id": lockID, "expires_at": bson.M{"$lt": now}}
	if _, err := r.collection.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to clear expired booking lock: %w", err)
	}
	return nil
}

// Release deletes the lock only while owner still holds it. A holder whose
// lock expired and was taken over leaves the new holder's lock in place.
func (r *mongoBookingLockRepository) Release(ctx context.Context, lockID, owner string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID, "owner": owner})
	if err != nil {
		return fmt.Errorf("failed to release booking lock: %w", err)
	}
	if result.DeletedCount == 0 {
		r.cfg.Log.Warn("Booking lock was no longer held at release", "lock_id", lockID)
	}
	return nil
}
