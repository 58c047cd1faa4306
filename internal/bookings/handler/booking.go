package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"turfly/internal/bookings/service"
	apperrors "turfly/pkg/errors"
	httputil "turfly/pkg/http"
	"turfly/pkg/logger"
	"turfly/pkg/middleware"
	"turfly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// TurfChecker reports whether a turf is in the catalog.
type TurfChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type BookingHandler struct {
	service service.BookingService
	turfs   TurfChecker
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, turfs TurfChecker, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		turfs:   turfs,
		log:     log,
	}
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

// Create books a slot. Customers book as themselves; anonymous callers must
// name the requester in the body and always pay the turf's catalog rate.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.CreateBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, "Create", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		if claims.Role == model.RoleCustomer || input.RequesterID == "" {
			input.RequesterID = claims.Subject
		}
	} else {
		input.Price = 0
	}

	if err := h.requireTurf(r.Context(), input.TurfID); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	booking, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Mine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.RequireClaims(r.Context())
	if err != nil {
		h.writeError(w, "Mine", err)
		return
	}
	if claims.Role != model.RoleCustomer {
		h.writeError(w, "Mine", apperrors.Forbidden("Only customers have personal bookings"))
		return
	}

	bookings, err := h.service.ListByRequester(r.Context(), claims.Subject)
	if err != nil {
		h.writeError(w, "Mine", err)
		return
	}

	if err := httputil.WriteList(w, bookings, len(bookings)); err != nil {
		h.log.Error("failed to write list response", "handler", "Mine", "operation", "WriteList", "error", err)
	}
}

func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	turfID, err := httputil.RequireQuery(r, "turf_id")
	if err != nil {
		h.writeError(w, "Availability", err)
		return
	}
	date, err := httputil.RequireISODate(r, "date")
	if err != nil {
		h.writeError(w, "Availability", err)
		return
	}
	startTime, err := httputil.QueryInt(r, "start_time", -1)
	if err != nil {
		h.writeError(w, "Availability", err)
		return
	}
	durationHours, err := httputil.QueryInt(r, "duration_hours", 1)
	if err != nil {
		h.writeError(w, "Availability", err)
		return
	}
	if err := h.requireTurf(r.Context(), turfID); err != nil {
		h.writeError(w, "Availability", err)
		return
	}

	available, err := h.service.IsAvailable(r.Context(), turfID, date, startTime, durationHours)
	if err != nil {
		h.writeError(w, "Availability", err)
		return
	}

	if err := httputil.WriteSuccess(w, availabilityResponse{Available: available}); err != nil {
		h.log.Error("failed to write success response", "handler", "Availability", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) requireTurf(ctx context.Context, turfID string) error {
	if turfID == "" {
		return nil
	}
	ok, err := h.turfs.Exists(ctx, turfID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFoundWithID("Turf", turfID)
	}
	return nil
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.GET("/api/v1/bookings/mine", h.Mine)
	router.GET("/api/v1/availability", h.Availability)
}
