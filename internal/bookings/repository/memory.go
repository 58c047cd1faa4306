package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	bookingserrors "turfly/internal/bookings/errors"
	mongotx "turfly/pkg/db/mongo"
	"turfly/pkg/model"

	"github.com/google/uuid"
)

// partition holds the bookings of one (turf, date). The slice behind the
// pointer is never mutated: writers publish a fresh copy, so a reader that
// loads it once sees a consistent snapshot without locking.
type partition struct {
	bookings atomic.Pointer[[]*model.Booking]
}

func (p *partition) load() []*model.Booking {
	if s := p.bookings.Load(); s != nil {
		return *s
	}
	return nil
}

type memoryBookingRepository struct {
	mu         sync.Mutex // serialises writers
	partitions sync.Map   // partitionKey -> *partition
	index      sync.Map   // booking id -> partitionKey
	count      atomic.Int64
	txManager  mongotx.TransactionManager
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		txManager: mongotx.NewLocalTransactionManager(),
	}
}

func (r *memoryBookingRepository) partitionFor(key string) *partition {
	if p, ok := r.partitions.Load(key); ok {
		return p.(*partition)
	}
	p, _ := r.partitions.LoadOrStore(key, &partition{})
	return p.(*partition)
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index.Load(booking.ID); exists {
		return fmt.Errorf("%w: %s", bookingserrors.ErrDuplicateID, booking.ID)
	}

	now := time.Now().UTC()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = booking.CreatedAt

	key := partitionKey(booking.TurfID, booking.Date)
	p := r.partitionFor(key)
	old := p.load()
	next := make([]*model.Booking, len(old), len(old)+1)
	copy(next, old)
	next = append(next, booking.Clone())
	p.bookings.Store(&next)

	r.index.Store(booking.ID, key)
	r.count.Add(1)
	return nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, ok := r.index.Load(id)
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}
	for _, b := range r.partitionFor(key.(string)).load() {
		if b.ID == id {
			return b.Clone(), nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (r *memoryBookingRepository) FindActiveByPartition(ctx context.Context, turfID, date string) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := r.partitions.Load(partitionKey(turfID, date))
	if !ok {
		return nil, nil
	}

	var out []*model.Booking
	for _, b := range p.(*partition).load() {
		if b.IsActive() {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

func (r *memoryBookingRepository) collect(ctx context.Context, keep func(*model.Booking) bool) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*model.Booking, 0)
	r.partitions.Range(func(_, value any) bool {
		for _, b := range value.(*partition).load() {
			if keep(b) {
				out = append(out, b.Clone())
			}
		}
		return true
	})
	return out, nil
}

func (r *memoryBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	return r.collect(ctx, func(*model.Booking) bool { return true })
}

func (r *memoryBookingRepository) FindByRequester(ctx context.Context, requesterID string) ([]*model.Booking, error) {
	return r.collect(ctx, func(b *model.Booking) bool { return b.RequesterID == requesterID })
}

func (r *memoryBookingRepository) FindByTurfs(ctx context.Context, turfIDs []string) ([]*model.Booking, error) {
	wanted := make(map[string]struct{}, len(turfIDs))
	for _, id := range turfIDs {
		wanted[id] = struct{}{}
	}
	return r.collect(ctx, func(b *model.Booking) bool {
		_, ok := wanted[b.TurfID]
		return ok
	})
}

func (r *memoryBookingRepository) UpdateStatus(ctx context.Context, id string, from []model.BookingStatus, to model.BookingStatus) (*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.index.Load(id)
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}

	p := r.partitionFor(key.(string))
	old := p.load()
	for i, b := range old {
		if b.ID != id {
			continue
		}
		if !containsStatus(from, b.Status) {
			return b.Clone(), bookingserrors.ErrStatusConflict
		}

		updated := b.Clone()
		updated.Status = to
		updated.UpdatedAt = time.Now().UTC()

		next := make([]*model.Booking, len(old))
		copy(next, old)
		next[i] = updated
		p.bookings.Store(&next)
		return updated.Clone(), nil
	}
	return nil, bookingserrors.ErrNotFound
}

func (r *memoryBookingRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	r.partitions.Range(func(key, value any) bool {
		removed += int64(len(value.(*partition).load()))
		r.partitions.Delete(key)
		return true
	})
	r.index.Range(func(key, _ any) bool {
		r.index.Delete(key)
		return true
	})
	r.count.Store(0)
	return removed, nil
}

func (r *memoryBookingRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.count.Load(), nil
}

// GuardPartition is a no-op: the in-process lock cannot be lost, and Create
// already runs under the writer mutex.
func (r *memoryBookingRepository) GuardPartition(context.Context, string, string) error {
	return nil
}

func (r *memoryBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}

func (r *memoryBookingRepository) Ping(context.Context) error {
	return nil
}

// lockSlot is one partition's lock. refs counts the holder plus everyone
// waiting, and the slot is dropped from the map when it reaches zero.
type lockSlot struct {
	ch    chan struct{}
	owner string
	refs  int
}

type memoryBookingLockRepository struct {
	mu    sync.Mutex
	slots map[string]*lockSlot
}

// NewMemoryBookingLockRepository returns an in-process lock. Holders cannot
// outlive the process, so ttl is not needed and ignored.
func NewMemoryBookingLockRepository() BookingLockRepository {
	return &memoryBookingLockRepository{slots: make(map[string]*lockSlot)}
}

func (r *memoryBookingLockRepository) join(lockID string) *lockSlot {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[lockID]
	if !ok {
		slot = &lockSlot{ch: make(chan struct{}, 1)}
		r.slots[lockID] = slot
	}
	slot.refs++
	return slot
}

// leave must be called with mu held.
func (r *memoryBookingLockRepository) leave(lockID string, slot *lockSlot) {
	slot.refs--
	if slot.refs == 0 {
		delete(r.slots, lockID)
	}
}

func (r *memoryBookingLockRepository) Acquire(ctx context.Context, lockID string, _ time.Duration) (string, error) {
	slot := r.join(lockID)
	select {
	case slot.ch <- struct{}{}:
		owner := uuid.NewString()
		r.mu.Lock()
		slot.owner = owner
		r.mu.Unlock()
		return owner, nil
	case <-ctx.Done():
		r.mu.Lock()
		r.leave(lockID, slot)
		r.mu.Unlock()
		return "", fmt.Errorf("%w: %s", bookingserrors.ErrLockTimeout, lockID)
	}
}

func (r *memoryBookingLockRepository) Release(_ context.Context, lockID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[lockID]
	if !ok || owner == "" || slot.owner != owner {
		return nil
	}
	slot.owner = ""
	<-slot.ch
	r.leave(lockID, slot)
	return nil
}
