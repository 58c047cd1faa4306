package repository

import (
	"context"
	"sync"
	"testing"
	"time"
	bookingserrors "turfly/internal/bookings/errors"
	"turfly/pkg/config"
	"turfly/pkg/logger"
	"turfly/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeLockCollection keeps lock documents by _id and understands the filters
// the lock repository sends.
type fakeLockCollection struct {
	mu      sync.Mutex
	docs    map[string]model.BookingLock
	deletes []bson.M
}

func newFakeLockCollection() *fakeLockCollection {
	return &fakeLockCollection{docs: make(map[string]model.BookingLock)}
}

func (c *fakeLockCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock := *document.(*model.BookingLock)
	if _, exists := c.docs[lock.ID]; exists {
		return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}}}
	}
	c.docs[lock.ID] = lock
	return &mongo.InsertOneResult{InsertedID: lock.ID}, nil
}

func (c *fakeLockCollection) DeleteOne(_ context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := filter.(bson.M)
	c.deletes = append(c.deletes, f)

	lock, ok := c.docs[f["_id"].(string)]
	if !ok {
		return &mongo.DeleteResult{}, nil
	}
	if owner, set := f["owner"]; set && lock.Owner != owner.(string) {
		return &mongo.DeleteResult{}, nil
	}
	if expiry, set := f["expires_at"]; set && !lock.ExpiresAt.Before(expiry.(bson.M)["$lt"].(time.Time)) {
		return &mongo.DeleteResult{}, nil
	}
	delete(c.docs, lock.ID)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (c *fakeLockCollection) holder(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.docs[id]
	return lock.Owner, ok
}

func newTestMongoLock() (*mongoBookingLockRepository, *fakeLockCollection) {
	coll := newFakeLockCollection()
	cfg := &config.Config{Log: logger.Nop(), WriteTimeout: time.Second}
	return &mongoBookingLockRepository{cfg: cfg, collection: coll}, coll
}

func TestMongoLock_ReleaseFiltersByOwner(t *testing.T) {
	locks, coll := newTestMongoLock()
	ctx := context.Background()
	id := LockID("t1", "2024-06-01")

	owner, err := locks.Acquire(ctx, id, time.Minute)
	require.NoError(t, err)
	holder, _ := coll.holder(id)
	assert.Equal(t, owner, holder)

	require.NoError(t, locks.Release(ctx, id, "someone-else"))
	_, held := coll.holder(id)
	assert.True(t, held, "release by a non-owner keeps the lock")

	require.NoError(t, locks.Release(ctx, id, owner))
	_, held = coll.holder(id)
	assert.False(t, held)

	last := coll.deletes[len(coll.deletes)-1]
	assert.Equal(t, bson.M{"_id": id, "owner": owner}, last)
}

func TestMongoLock_ExpiredHolderCannotReleaseSuccessor(t *testing.T) {
	locks, coll := newTestMongoLock()
	ctx := context.Background()
	id := LockID("t1", "2024-06-01")

	first, err := locks.Acquire(ctx, id, time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	second, err := locks.Acquire(ctx, id, time.Minute)
	require.NoError(t, err, "an expired lock is taken over")
	require.NotEqual(t, first, second)

	// The first holder finishes late and releases.
	require.NoError(t, locks.Release(ctx, id, first))
	holder, held := coll.holder(id)
	require.True(t, held)
	assert.Equal(t, second, holder)

	short, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	_, err = locks.Acquire(short, id, time.Minute)
	assert.ErrorIs(t, err, bookingserrors.ErrLockTimeout, "a third caller still waits for the second holder")

	require.NoError(t, locks.Release(ctx, id, second))
	_, held = coll.holder(id)
	assert.False(t, held)
}
