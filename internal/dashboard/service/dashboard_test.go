package service

import (
	"context"
	"testing"
	"time"
	"turfly/internal/bookings/repository"
	bookingsservice "turfly/internal/bookings/service"
	"turfly/internal/bookings/validator"
	turfsrepository "turfly/internal/turfs/repository"
	turfsservice "turfly/internal/turfs/service"
	"turfly/pkg/config"
	apperrors "turfly/pkg/errors"
	"turfly/pkg/logger"
	"turfly/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin    = &model.Claims{Role: model.RoleAdmin, Subject: "3"}
	manager  = &model.Claims{Role: model.RoleManager, Subject: "2"}
	orphan   = &model.Claims{Role: model.RoleManager, Subject: "99"}
	customer = &model.Claims{Role: model.RoleCustomer, Subject: "u1"}
	other    = &model.Claims{Role: model.RoleCustomer, Subject: "u2"}
)

type fixture struct {
	dashboard DashboardService
	bookings  bookingsservice.BookingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		Log:          logger.Nop(),
		SlotLockTTL:  time.Second,
		OpeningHour:  6,
		ClosingHour:  24,
		PhoneRegions: []string{"BD"},
	}
	turfs := turfsservice.NewTurfService(turfsrepository.NewSeededRepository(), cfg.Log)
	bookings := bookingsservice.NewBookingService(
		repository.NewMemoryBookingRepository(),
		repository.NewMemoryBookingLockRepository(),
		validator.NewBookingValidator(cfg.Log),
		turfs,
		nil,
		nil,
		cfg,
	)
	return &fixture{
		dashboard: NewDashboardService(bookings, turfs, cfg.Log),
		bookings:  bookings,
	}
}

func (f *fixture) book(t *testing.T, turfID, requester, name string, hour int) *model.Booking {
	t.Helper()
	b, err := f.bookings.Create(context.Background(), &model.CreateBookingInput{
		TurfID:        turfID,
		RequesterID:   requester,
		GuestName:     name,
		GuestContact:  "01712345678",
		Date:          "2025-06-01",
		StartTime:     hour,
		DurationHours: 1,
	})
	require.NoError(t, err)
	return b
}

func ids(bookings []*model.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func TestList_Scopes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	onManaged := f.book(t, "t1", "u1", "Karim", 10)
	onUnassigned := f.book(t, "t4", "u2", "Rahim", 10)

	all, err := f.dashboard.List(ctx, admin, model.BookingFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{onManaged.ID, onUnassigned.ID}, ids(all))

	mine, err := f.dashboard.List(ctx, manager, model.BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{onManaged.ID}, ids(mine), "unassigned turfs are admin-only")

	_, err = f.dashboard.List(ctx, orphan, model.BookingFilter{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))

	_, err = f.dashboard.List(ctx, customer, model.BookingFilter{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))

	_, err = f.dashboard.List(ctx, nil, model.BookingFilter{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}

func TestList_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	karim := f.book(t, "t1", "u1", "Mr Karim", 10)
	time.Sleep(2 * time.Millisecond)
	rahim := f.book(t, "t1", "u2", "Rahim Uddin", 11)
	_, err := f.bookings.Confirm(ctx, rahim.ID)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter model.BookingFilter
		want   []string
	}{
		{name: "everything newest first", filter: model.BookingFilter{}, want: []string{rahim.ID, karim.ID}},
		{name: "status", filter: model.BookingFilter{Status: model.StatusPending}, want: []string{karim.ID}},
		{name: "name any case", filter: model.BookingFilter{Query: "KARIM"}, want: []string{karim.ID}},
		{name: "requester exact", filter: model.BookingFilter{Query: "u2"}, want: []string{rahim.ID}},
		{name: "single letter only hits names", filter: model.BookingFilter{Query: "u"}, want: []string{rahim.ID}},
		{name: "id substring", filter: model.BookingFilter{Query: karim.ID[:8]}, want: []string{karim.ID}},
		{name: "contact substring", filter: model.BookingFilter{Query: "1712345"}, want: []string{rahim.ID, karim.ID}},
		{name: "no match", filter: model.BookingFilter{Query: "zzz"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.dashboard.List(ctx, admin, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	_, err = f.dashboard.List(ctx, admin, model.BookingFilter{Status: "archived"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))
}

func TestConfirmAndCancel_Scope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	managed := f.book(t, "t1", "u1", "Karim", 10)
	unassigned := f.book(t, "t4", "u1", "Karim", 10)

	_, err := f.dashboard.Confirm(ctx, manager, unassigned.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))

	_, err = f.dashboard.Confirm(ctx, customer, managed.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden), "customers cannot confirm")

	confirmed, err := f.dashboard.Confirm(ctx, manager, managed.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, confirmed.Status)

	_, err = f.dashboard.Cancel(ctx, other, managed.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden), "customers cannot cancel someone else's booking")

	cancelled, err := f.dashboard.Cancel(ctx, customer, managed.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	_, err = f.dashboard.Cancel(ctx, admin, unassigned.ID)
	require.NoError(t, err)

	_, err = f.dashboard.Cancel(ctx, nil, managed.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))

	_, err = f.dashboard.Cancel(ctx, manager, "missing")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestClear_AdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, "t1", "u1", "Karim", 10)

	_, err := f.dashboard.Clear(ctx, manager)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))

	removed, err := f.dashboard.Clear(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.book(t, "t1", "u1", "Karim", 10)
	b := f.book(t, "t1", "u1", "Karim", 11)
	f.book(t, "t1", "u1", "Karim", 12)
	f.book(t, "t4", "u1", "Karim", 12)

	_, err := f.bookings.Confirm(ctx, a.ID)
	require.NoError(t, err)
	_, err = f.bookings.Cancel(ctx, b.ID)
	require.NoError(t, err)

	stats, err := f.dashboard.Stats(ctx, manager)
	require.NoError(t, err)
	assert.Equal(t, &model.BookingStats{Total: 3, Pending: 1, Confirmed: 1, Cancelled: 1, Revenue: 1200}, stats)

	stats, err = f.dashboard.Stats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Pending)
}
