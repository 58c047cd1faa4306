package handler

import (
	"context"
	"net/http"
	"turfly/internal/turfs/service"
	httputil "turfly/pkg/http"
	"turfly/pkg/logger"
	"turfly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// SlotReader renders a turf's hourly grid for one date.
type SlotReader interface {
	DaySlots(ctx context.Context, turfID, date string) ([]model.HourSlot, error)
}

type TurfHandler struct {
	service service.TurfService
	slots   SlotReader
	log     *logger.Logger
}

func NewTurfHandler(service service.TurfService, slots SlotReader, log *logger.Logger) *TurfHandler {
	return &TurfHandler{
		service: service,
		slots:   slots,
		log:     log,
	}
}

type daySlotsResponse struct {
	TurfID string           `json:"turf_id"`
	Date   string           `json:"date"`
	Slots  []model.HourSlot `json:"slots"`
}

func (h *TurfHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter := model.TurfFilter{
		Location: query.Get("location"),
		Sport:    query.Get("sport"),
	}

	turfs, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteList(w, turfs, len(turfs)); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *TurfHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	turf, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, turf); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *TurfHandler) DaySlots(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date, err := httputil.RequireISODate(r, "date")
	if err != nil {
		h.writeError(w, "DaySlots", err)
		return
	}

	turf, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "DaySlots", err)
		return
	}

	slots, err := h.slots.DaySlots(r.Context(), turf.ID, date)
	if err != nil {
		h.writeError(w, "DaySlots", err)
		return
	}

	resp := daySlotsResponse{TurfID: turf.ID, Date: date, Slots: slots}
	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "DaySlots", "operation", "WriteSuccess", "error", err)
	}
}

func (h *TurfHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *TurfHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/turfs", h.List)
	router.GET("/api/v1/turfs/id/:id", h.GetByID)
	router.GET("/api/v1/turfs/id/:id/slots", h.DaySlots)
}
