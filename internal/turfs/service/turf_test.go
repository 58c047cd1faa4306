package service

import (
	"context"
	"testing"
	"turfly/internal/turfs/repository"
	apperrors "turfly/pkg/errors"
	"turfly/pkg/logger"
	"turfly/pkg/model"
)

func newSeededService() TurfService {
	return NewTurfService(repository.NewSeededRepository(), logger.Nop())
}

func TestTurfService_Get(t *testing.T) {
	svc := newSeededService()
	ctx := context.Background()

	turf, err := svc.Get(ctx, " t1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turf.PricePerHour != 1200 || turf.ManagerID != "2" {
		t.Errorf("unexpected turf %+v", turf)
	}

	turf.Amenities[0] = "changed"
	again, _ := svc.Get(ctx, "t1")
	if again.Amenities[0] != "Parking" {
		t.Error("catalog must not be mutable through returned records")
	}

	if _, err := svc.Get(ctx, "t404"); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if _, err := svc.Get(ctx, ""); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestTurfService_List(t *testing.T) {
	svc := newSeededService()

	tests := []struct {
		name   string
		filter model.TurfFilter
		want   int
	}{
		{name: "no filter", filter: model.TurfFilter{}, want: 10},
		{name: "location substring", filter: model.TurfFilter{Location: "mirp"}, want: 1},
		{name: "location any case", filter: model.TurfFilter{Location: "  GULSHAN "}, want: 1},
		{name: "sport", filter: model.TurfFilter{Sport: "football"}, want: 10},
		{name: "sport is exact", filter: model.TurfFilter{Sport: "foot"}, want: 0},
		{name: "no match", filter: model.TurfFilter{Location: "Sylhet"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turfs, err := svc.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(turfs) != tt.want {
				t.Errorf("expected %d turfs, got %d", tt.want, len(turfs))
			}
		})
	}
}

func TestTurfService_Exists(t *testing.T) {
	svc := newSeededService()
	ok, err := svc.Exists(context.Background(), "t10")
	if err != nil || !ok {
		t.Errorf("expected t10 to exist, got %v %v", ok, err)
	}
	ok, err = svc.Exists(context.Background(), "t11")
	if err != nil || ok {
		t.Errorf("expected t11 to be missing, got %v %v", ok, err)
	}
}

func TestTurfService_ManagedBy(t *testing.T) {
	svc := newSeededService()

	ids, err := svc.ManagedBy(context.Background(), "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 7 {
		t.Errorf("expected 7 turfs for manager 2, got %v", ids)
	}
	for _, id := range ids {
		if id == "t4" || id == "t6" || id == "t9" {
			t.Errorf("manager 2 must not own %s", id)
		}
	}

	if _, err := svc.ManagedBy(context.Background(), "99"); !apperrors.HasCode(err, apperrors.CodeForbidden) {
		t.Errorf("unassigned manager id should be forbidden, got %v", err)
	}
}
