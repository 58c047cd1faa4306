package availability

import (
	"context"
	"errors"
	"testing"
	"turfly/internal/bookings/repository"
	"turfly/pkg/model"
)

func booking(id string, start, dur int, status model.BookingStatus) *model.Booking {
	return &model.Booking{
		ID:            id,
		TurfID:        "t1",
		Date:          "2024-06-01",
		StartTime:     start,
		DurationHours: dur,
		Status:        status,
	}
}

func TestFindConflict(t *testing.T) {
	existing := []*model.Booking{
		booking("pending", 10, 2, model.StatusPending),
		booking("cancelled", 14, 2, model.StatusCancelled),
		booking("confirmed", 18, 1, model.StatusConfirmed),
	}

	tests := []struct {
		name   string
		start  int
		dur    int
		wantID string
	}{
		{name: "overlaps pending", start: 11, dur: 1, wantID: "pending"},
		{name: "overlaps confirmed", start: 17, dur: 2, wantID: "confirmed"},
		{name: "cancelled frees slot", start: 14, dur: 2},
		{name: "adjacent", start: 12, dur: 2},
		{name: "after all", start: 19, dur: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflict(existing, model.Slot{Date: "2024-06-01", StartTime: tt.start, DurationHours: tt.dur})
			if tt.wantID == "" {
				if got != nil {
					t.Errorf("expected no conflict, got %s", got.ID)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("expected conflict with %s, got %v", tt.wantID, got)
			}
		})
	}
}

func TestChecker_IsAvailable(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryBookingRepository()
	if err := repo.Create(ctx, booking("b1", 18, 2, model.StatusPending)); err != nil {
		t.Fatal(err)
	}
	checker := NewChecker(repo, 6, 24)

	tests := []struct {
		name  string
		turf  string
		date  string
		start int
		dur   int
		want  bool
	}{
		{name: "empty hour", turf: "t1", date: "2024-06-01", start: 10, dur: 1, want: true},
		{name: "inside booking", turf: "t1", date: "2024-06-01", start: 19, dur: 1, want: false},
		{name: "right after", turf: "t1", date: "2024-06-01", start: 20, dur: 1, want: true},
		{name: "other turf", turf: "t2", date: "2024-06-01", start: 18, dur: 2, want: true},
		{name: "other date", turf: "t1", date: "2024-06-02", start: 18, dur: 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.IsAvailable(ctx, tt.turf, tt.date, tt.start, tt.dur)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAvailable = %v, want %v", got, tt.want)
			}
		})
	}
}

type failingRepo struct {
	repository.BookingRepository
}

func (failingRepo) FindActiveByPartition(context.Context, string, string) ([]*model.Booking, error) {
	return nil, errors.New("connection reset")
}

func TestChecker_StoreFailure(t *testing.T) {
	checker := NewChecker(failingRepo{}, 6, 24)
	if _, err := checker.IsAvailable(context.Background(), "t1", "2024-06-01", 10, 1); err == nil {
		t.Error("expected store error")
	}
	if _, err := checker.DaySlots(context.Background(), "t1", "2024-06-01"); err == nil {
		t.Error("expected store error")
	}
}

func TestChecker_DaySlots(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryBookingRepository()
	_ = repo.Create(ctx, booking("b1", 18, 2, model.StatusConfirmed))
	_ = repo.Create(ctx, booking("b2", 8, 1, model.StatusCancelled))

	slots, err := NewChecker(repo, 6, 24).DaySlots(ctx, "t1", "2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 18 {
		t.Fatalf("expected 18 hours, got %d", len(slots))
	}
	if slots[0].Hour != 6 || slots[len(slots)-1].Hour != 23 {
		t.Errorf("unexpected grid bounds %d..%d", slots[0].Hour, slots[len(slots)-1].Hour)
	}

	for _, s := range slots {
		want := s.Hour == 18 || s.Hour == 19
		if s.Booked != want {
			t.Errorf("hour %d booked = %v, want %v", s.Hour, s.Booked, want)
		}
	}
}
