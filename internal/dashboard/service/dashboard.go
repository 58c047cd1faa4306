package service

import (
	"context"
	"strings"
	bookingsservice "turfly/internal/bookings/service"
	apperrors "turfly/pkg/errors"
	"turfly/pkg/logger"
	"turfly/pkg/model"
	"turfly/pkg/sanitizer"
)

// TurfScope resolves which turfs a manager may act on.
type TurfScope interface {
	ManagedBy(ctx context.Context, managerID string) ([]string, error)
}

// DashboardService exposes bookings to staff, narrowed to what the caller
// may see. Admins see everything; a manager sees bookings on turfs they own.
// Customers may only cancel their own bookings.
type DashboardService interface {
	List(ctx context.Context, caller *model.Claims, filter model.BookingFilter) ([]*model.Booking, error)
	Stats(ctx context.Context, caller *model.Claims) (*model.BookingStats, error)
	Confirm(ctx context.Context, caller *model.Claims, id string) (*model.Booking, error)
	Cancel(ctx context.Context, caller *model.Claims, id string) (*model.Booking, error)
	Clear(ctx context.Context, caller *model.Claims) (int64, error)
}

type dashboardService struct {
	bookings bookingsservice.BookingService
	turfs    TurfScope
	log      *logger.Logger
}

func NewDashboardService(bookings bookingsservice.BookingService, turfs TurfScope, log *logger.Logger) DashboardService {
	return &dashboardService{
		bookings: bookings,
		turfs:    turfs,
		log:      log,
	}
}

func (s *dashboardService) List(ctx context.Context, caller *model.Claims, filter model.BookingFilter) ([]*model.Booking, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.InvalidInput("status must be one of: all, pending, confirmed, cancelled")
	}

	bookings, err := s.scoped(ctx, caller)
	if err != nil {
		return nil, err
	}

	query := sanitizer.SanitizeQuery(filter.Query)
	out := make([]*model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if query != "" && !matches(b, query) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Stats counts bookings per status. Revenue only includes confirmed bookings.
func (s *dashboardService) Stats(ctx context.Context, caller *model.Claims) (*model.BookingStats, error) {
	bookings, err := s.scoped(ctx, caller)
	if err != nil {
		return nil, err
	}

	stats := &model.BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusConfirmed:
			stats.Confirmed++
			stats.Revenue += b.TotalPrice
		case model.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (s *dashboardService) Confirm(ctx context.Context, caller *model.Claims, id string) (*model.Booking, error) {
	if !caller.IsStaff() {
		return nil, s.deny(caller, "confirm", id, "Only admins and managers can confirm bookings")
	}
	if err := s.authorize(ctx, caller, id); err != nil {
		return nil, err
	}
	return s.bookings.Confirm(ctx, id)
}

func (s *dashboardService) Cancel(ctx context.Context, caller *model.Claims, id string) (*model.Booking, error) {
	if caller == nil {
		return nil, apperrors.Unauthorized("Authentication required")
	}
	if err := s.authorize(ctx, caller, id); err != nil {
		return nil, err
	}
	return s.bookings.Cancel(ctx, id)
}

func (s *dashboardService) Clear(ctx context.Context, caller *model.Claims) (int64, error) {
	if !caller.IsAdmin() {
		return 0, s.deny(caller, "clear", "", "Only admins can clear bookings")
	}
	return s.bookings.ClearAll(ctx)
}

// scoped returns the bookings the caller may see, newest first.
func (s *dashboardService) scoped(ctx context.Context, caller *model.Claims) ([]*model.Booking, error) {
	switch {
	case caller.IsAdmin():
		return s.bookings.ListAll(ctx)
	case caller.IsManager():
		turfIDs, err := s.turfs.ManagedBy(ctx, caller.Subject)
		if err != nil {
			return nil, err
		}
		return s.bookings.ListByTurfs(ctx, turfIDs)
	case caller == nil:
		return nil, apperrors.Unauthorized("Authentication required")
	default:
		return nil, s.deny(caller, "list", "", "Only admins and managers can view the dashboard")
	}
}

// authorize checks that caller may change booking id.
func (s *dashboardService) authorize(ctx context.Context, caller *model.Claims, id string) error {
	if caller.IsAdmin() {
		return nil
	}

	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		return err
	}

	if caller.IsManager() {
		turfIDs, err := s.turfs.ManagedBy(ctx, caller.Subject)
		if err != nil {
			return err
		}
		for _, turfID := range turfIDs {
			if turfID == booking.TurfID {
				return nil
			}
		}
		return s.deny(caller, "update", id, "This booking belongs to a turf you do not manage")
	}

	if booking.RequesterID != caller.Subject {
		return s.deny(caller, "update", id, "You can only cancel your own bookings")
	}
	return nil
}

func (s *dashboardService) deny(caller *model.Claims, action, id, message string) error {
	if caller == nil {
		return apperrors.Unauthorized("Authentication required")
	}
	s.log.Warn("Dashboard action denied",
		"action", action,
		"booking_id", id,
		"role", caller.Role,
		"subject", caller.Subject,
	)
	return apperrors.Forbidden(message)
}

// matches applies the dashboard search box: guest name ignoring case, contact
// and booking id by substring, requester id exactly.
func matches(b *model.Booking, query string) bool {
	return strings.Contains(strings.ToLower(b.GuestName), query) ||
		strings.Contains(strings.ToLower(b.GuestContact), query) ||
		strings.Contains(strings.ToLower(b.ID), query) ||
		strings.ToLower(b.RequesterID) == query
}
