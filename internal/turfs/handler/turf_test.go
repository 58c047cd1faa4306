package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"turfly/internal/turfs/repository"
	"turfly/internal/turfs/service"
	"turfly/pkg/logger"
	"turfly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type slotReaderFunc func(ctx context.Context, turfID, date string) ([]model.HourSlot, error)

func (f slotReaderFunc) DaySlots(ctx context.Context, turfID, date string) ([]model.HourSlot, error) {
	return f(ctx, turfID, date)
}

func newRouter(slots SlotReader) *httprouter.Router {
	svc := service.NewTurfService(repository.NewSeededRepository(), logger.Nop())
	router := httprouter.New()
	NewTurfHandler(svc, slots, logger.Nop()).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestTurfHandler_List(t *testing.T) {
	rec := serve(newRouter(nil), "/api/v1/turfs?location=dhan")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data       []model.Turf `json:"data"`
		TotalCount int          `json:"total_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.TotalCount != 1 || body.Data[0].ID != "t2" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestTurfHandler_GetByID(t *testing.T) {
	router := newRouter(nil)

	if rec := serve(router, "/api/v1/turfs/id/t3"); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec := serve(router, "/api/v1/turfs/id/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestTurfHandler_DaySlots(t *testing.T) {
	var gotTurf, gotDate string
	router := newRouter(slotReaderFunc(func(_ context.Context, turfID, date string) ([]model.HourSlot, error) {
		gotTurf, gotDate = turfID, date
		return []model.HourSlot{{Hour: 6}, {Hour: 7, Booked: true}}, nil
	}))

	rec := serve(router, "/api/v1/turfs/id/t1/slots?date=2025-06-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotTurf != "t1" || gotDate != "2025-06-01" {
		t.Errorf("slot reader called with %q %q", gotTurf, gotDate)
	}

	tests := []struct {
		target string
		want   int
	}{
		{"/api/v1/turfs/id/t1/slots", http.StatusBadRequest},
		{"/api/v1/turfs/id/t1/slots?date=tomorrow", http.StatusBadRequest},
		{"/api/v1/turfs/id/t404/slots?date=2025-06-01", http.StatusNotFound},
	}
	for _, tt := range tests {
		if rec := serve(router, tt.target); rec.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.target, tt.want, rec.Code)
		}
	}
}
