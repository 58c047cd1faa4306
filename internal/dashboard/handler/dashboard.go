package handler

import (
	"net/http"
	"strings"
	"turfly/internal/dashboard/service"
	httputil "turfly/pkg/http"
	"turfly/pkg/logger"
	"turfly/pkg/middleware"
	"turfly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const statusAll = "all"

type DashboardHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewDashboardHandler(service service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

type clearResponse struct {
	Removed int64 `json:"removed"`
}

func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	status := strings.ToLower(strings.TrimSpace(query.Get("status")))
	if status == statusAll {
		status = ""
	}
	filter := model.BookingFilter{
		Status: model.BookingStatus(status),
		Query:  query.Get("q"),
	}

	bookings, err := h.service.List(r.Context(), middleware.ClaimsFromContext(r.Context()), filter)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteList(w, bookings, len(bookings)); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.service.Stats(r.Context(), middleware.ClaimsFromContext(r.Context()))
	if err != nil {
		h.writeError(w, "Stats", err)
		return
	}

	if err := httputil.WriteSuccess(w, stats); err != nil {
		h.log.Error("failed to write success response", "handler", "Stats", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) Confirm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.Confirm(r.Context(), middleware.ClaimsFromContext(r.Context()), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Confirm", err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Confirm", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.Cancel(r.Context(), middleware.ClaimsFromContext(r.Context()), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Cancel", err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Cancel", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	removed, err := h.service.Clear(r.Context(), middleware.ClaimsFromContext(r.Context()))
	if err != nil {
		h.writeError(w, "Clear", err)
		return
	}

	if err := httputil.WriteSuccess(w, clearResponse{Removed: removed}); err != nil {
		h.log.Error("failed to write success response", "handler", "Clear", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DashboardHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *DashboardHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/bookings", h.List)
	router.GET("/api/v1/bookings/stats", h.Stats)
	router.POST("/api/v1/bookings/clear", h.Clear)
	router.POST("/api/v1/bookings/id/:id/confirm", h.Confirm)
	router.POST("/api/v1/bookings/id/:id/cancel", h.Cancel)
}
