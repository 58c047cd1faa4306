package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"turfly/internal/bookings/availability"
	bookingserrors "turfly/internal/bookings/errors"
	"turfly/internal/bookings/events"
	"turfly/internal/bookings/repository"
	"turfly/internal/bookings/validator"
	"turfly/pkg/config"
	apperrors "turfly/pkg/errors"
	"turfly/pkg/metrics"
	"turfly/pkg/model"
	"turfly/pkg/sanitizer"

	"github.com/google/uuid"
)

type BookingService interface {
	Create(ctx context.Context, input *model.CreateBookingInput) (*model.Booking, error)
	Get(ctx context.Context, id string) (*model.Booking, error)
	Confirm(ctx context.Context, id string) (*model.Booking, error)
	Cancel(ctx context.Context, id string) (*model.Booking, error)
	ClearAll(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]*model.Booking, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*model.Booking, error)
	ListByTurf(ctx context.Context, turfID string) ([]*model.Booking, error)
	ListByTurfs(ctx context.Context, turfIDs []string) ([]*model.Booking, error)
	IsAvailable(ctx context.Context, turfID, date string, startTime, durationHours int) (bool, error)
	DaySlots(ctx context.Context, turfID, date string) ([]model.HourSlot, error)
}

// TurfLookup resolves the turf a booking is made for, for pricing.
type TurfLookup interface {
	Get(ctx context.Context, id string) (*model.Turf, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	checker   *availability.Checker
	validator *validator.BookingValidator
	turfs     TurfLookup
	publisher events.Publisher
	metrics   *metrics.Metrics
	phones    *sanitizer.PhoneNormalizer
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	validator *validator.BookingValidator,
	turfs TurfLookup,
	publisher events.Publisher,
	m *metrics.Metrics,
	cfg *config.Config,
) BookingService {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		checker:   availability.NewChecker(repo, cfg.OpeningHour, cfg.ClosingHour),
		validator: validator,
		turfs:     turfs,
		publisher: publisher,
		metrics:   m,
		phones:    sanitizer.NewPhoneNormalizer(cfg.PhoneRegions),
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, input *model.CreateBookingInput) (*model.Booking, error) {
	s.sanitize(input)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	price, err := s.price(ctx, input)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		ID:            uuid.NewString(),
		TurfID:        input.TurfID,
		RequesterID:   input.RequesterID,
		GuestName:     input.GuestName,
		GuestContact:  input.GuestContact,
		Date:          input.Date,
		StartTime:     input.StartTime,
		DurationHours: input.DurationHours,
		Status:        model.StatusPending,
		TotalPrice:    price,
	}

	lockID, owner, err := s.acquireSlotLock(ctx, booking.TurfID, booking.Date)
	if err != nil {
		return nil, err
	}
	defer func() {
		// The request may already be cancelled; the lock must still go.
		if releaseErr := s.lockRepo.Release(context.WithoutCancel(ctx), lockID, owner); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.GuardPartition(txCtx, booking.TurfID, booking.Date); err != nil {
			return storeError("Failed to lock booking partition", err)
		}
		active, err := s.repo.FindActiveByPartition(txCtx, booking.TurfID, booking.Date)
		if err != nil {
			return storeError("Failed to check existing bookings", err)
		}
		if conflict := availability.FindConflict(active, booking.Slot()); conflict != nil {
			return apperrors.SlotUnavailable("This time slot is already booked. Please choose another time.", map[string]any{
				"turf_id":        booking.TurfID,
				"date":           booking.Date,
				"start_time":     booking.StartTime,
				"duration_hours": booking.DurationHours,
			})
		}
		if err := s.repo.Create(txCtx, booking); err != nil {
			return storeError("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeSlotUnavailable) {
			s.metrics.Booking(metrics.BookingConflict)
			s.cfg.Log.Warn("Booking rejected, slot unavailable",
				"turf_id", booking.TurfID,
				"slot", booking.Slot().String(),
			)
			return nil, apperrors.AsAppError(err)
		}
		s.cfg.Log.Error("Failed to create booking", "turf_id", booking.TurfID, "error", err)
		return nil, apperrors.AsAppError(err)
	}

	s.metrics.Booking(metrics.BookingCreated)
	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"turf_id", booking.TurfID,
		"slot", booking.Slot().String(),
		"total_price", booking.TotalPrice,
	)
	s.publish(ctx, events.NewBookingEvent(events.TypeBookingCreated, booking))
	return booking, nil
}

func (s *bookingService) Get(ctx context.Context, id string) (*model.Booking, error) {
	id = sanitizer.SanitizeID(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, storeError("Failed to retrieve booking", err)
	}
	return booking, nil
}

// Confirm moves a pending booking to confirmed. Confirming a confirmed
// booking returns it unchanged.
func (s *bookingService) Confirm(ctx context.Context, id string) (*model.Booking, error) {
	id = sanitizer.SanitizeID(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, []model.BookingStatus{model.StatusPending}, model.StatusConfirmed)
	switch {
	case err == nil:
	case errors.Is(err, bookingserrors.ErrStatusConflict):
		if updated.Status == model.StatusConfirmed {
			return updated, nil
		}
		s.cfg.Log.Warn("Rejected booking confirmation", "id", id, "status", updated.Status)
		return nil, apperrors.InvalidTransition(string(updated.Status), string(model.StatusConfirmed))
	case errors.Is(err, bookingserrors.ErrNotFound):
		return nil, apperrors.NotFoundWithID("Booking", id)
	default:
		s.cfg.Log.Error("Failed to confirm booking", "id", id, "error", err)
		return nil, storeError("Failed to confirm booking", err)
	}

	s.metrics.Booking(metrics.BookingConfirmed)
	s.cfg.Log.Info("Booking confirmed", "id", id, "turf_id", updated.TurfID)
	s.publish(ctx, events.NewBookingEvent(events.TypeBookingConfirmed, updated))
	return updated, nil
}

// Cancel frees the slot held by a booking. Cancelling twice is a no-op.
func (s *bookingService) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	id = sanitizer.SanitizeID(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, model.ActiveStatuses, model.StatusCancelled)
	switch {
	case err == nil:
	case errors.Is(err, bookingserrors.ErrStatusConflict):
		return updated, nil
	case errors.Is(err, bookingserrors.ErrNotFound):
		return nil, apperrors.NotFoundWithID("Booking", id)
	default:
		s.cfg.Log.Error("Failed to cancel booking", "id", id, "error", err)
		return nil, storeError("Failed to cancel booking", err)
	}

	s.metrics.Booking(metrics.BookingCancelled)
	s.cfg.Log.Info("Booking cancelled", "id", id, "turf_id", updated.TurfID)
	s.publish(ctx, events.NewBookingEvent(events.TypeBookingCancelled, updated))
	return updated, nil
}

func (s *bookingService) ClearAll(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to clear bookings", "error", err)
		return 0, storeError("Failed to clear bookings", err)
	}

	s.metrics.BookingsCleared(removed)
	s.cfg.Log.Info("All bookings cleared", "removed", removed)
	s.publish(ctx, events.NewClearedEvent(removed))
	return removed, nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, storeError("Failed to retrieve bookings", err)
	}
	SortNewestFirst(bookings)
	return bookings, nil
}

func (s *bookingService) ListByRequester(ctx context.Context, requesterID string) ([]*model.Booking, error) {
	requesterID = sanitizer.SanitizeID(requesterID)
	if requesterID == "" {
		return nil, apperrors.InvalidInput("Requester ID cannot be empty")
	}

	bookings, err := s.repo.FindByRequester(ctx, requesterID)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by requester", "requester_id", requesterID, "error", err)
		return nil, storeError("Failed to retrieve bookings", err)
	}
	SortNewestFirst(bookings)
	return bookings, nil
}

func (s *bookingService) ListByTurf(ctx context.Context, turfID string) ([]*model.Booking, error) {
	turfID = sanitizer.SanitizeID(turfID)
	if turfID == "" {
		return nil, apperrors.InvalidInput("Turf ID cannot be empty")
	}
	return s.ListByTurfs(ctx, []string{turfID})
}

func (s *bookingService) ListByTurfs(ctx context.Context, turfIDs []string) ([]*model.Booking, error) {
	bookings, err := s.repo.FindByTurfs(ctx, turfIDs)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by turf", "turf_ids", turfIDs, "error", err)
		return nil, storeError("Failed to retrieve bookings", err)
	}
	SortNewestFirst(bookings)
	return bookings, nil
}

func (s *bookingService) IsAvailable(ctx context.Context, turfID, date string, startTime, durationHours int) (bool, error) {
	slot := model.Slot{Date: date, StartTime: startTime, DurationHours: durationHours}
	if !slot.Valid() {
		return false, apperrors.InvalidInput("start_time and duration_hours must describe whole hours within one day")
	}

	available, err := s.checker.IsAvailable(ctx, sanitizer.SanitizeID(turfID), date, startTime, durationHours)
	if err != nil {
		s.cfg.Log.Error("Availability check failed", "turf_id", turfID, "error", err)
		return false, storeError("Failed to check availability", err)
	}
	return available, nil
}

func (s *bookingService) DaySlots(ctx context.Context, turfID, date string) ([]model.HourSlot, error) {
	slots, err := s.checker.DaySlots(ctx, sanitizer.SanitizeID(turfID), date)
	if err != nil {
		s.cfg.Log.Error("Failed to build day slots", "turf_id", turfID, "date", date, "error", err)
		return nil, storeError("Failed to load turf schedule", err)
	}
	return slots, nil
}

// SortNewestFirst orders bookings by created_at descending, then by id.
func SortNewestFirst(bookings []*model.Booking) {
	slices.SortFunc(bookings, func(a, b *model.Booking) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// --- Helpers ---

func (s *bookingService) sanitize(in *model.CreateBookingInput) {
	in.TurfID = sanitizer.SanitizeID(in.TurfID)
	in.RequesterID = sanitizer.SanitizeID(in.RequesterID)
	in.GuestName = sanitizer.SanitizeGuestName(in.GuestName)
	in.GuestContact = s.phones.Normalize(in.GuestContact)
	in.Date = sanitizer.SanitizeID(in.Date)
}

func (s *bookingService) validate(in *model.CreateBookingInput) error {
	if err := s.validator.Validate(in); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperrors.Validation("Booking validation failed", verrs.Details())
		}
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// price keeps a quoted price as-is and otherwise charges the turf's hourly
// rate for the whole duration.
func (s *bookingService) price(ctx context.Context, in *model.CreateBookingInput) (int64, error) {
	if in.Price > 0 {
		return in.Price, nil
	}
	turf, err := s.turfs.Get(ctx, in.TurfID)
	if err != nil {
		return 0, apperrors.AsAppError(err)
	}
	return turf.PriceFor(in.DurationHours), nil
}

func (s *bookingService) acquireSlotLock(ctx context.Context, turfID, date string) (string, string, error) {
	lockID := repository.LockID(turfID, date)
	owner, err := s.lockRepo.Acquire(ctx, lockID, s.cfg.SlotLockTTL)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrLockTimeout) {
			s.cfg.Log.Warn("Timed out waiting for booking lock", "lock_id", lockID)
			return "", "", apperrors.Timeout("This turf is busy taking other bookings. Please try again.")
		}
		s.cfg.Log.Error("Failed to acquire booking lock", "lock_id", lockID, "error", err)
		return "", "", apperrors.Internal("Failed to acquire booking lock", err)
	}
	return lockID, owner, nil
}

func (s *bookingService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "type", event.Type, "error", err)
	}
}

func storeError(message string, err error) *apperrors.AppError {
	if appErr := new(apperrors.AppError); errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Timeout("The booking store did not respond in time")
	}
	return apperrors.Internal(message, err)
}
