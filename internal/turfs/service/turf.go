package service

import (
	"context"
	"errors"
	"strings"
	turfserrors "turfly/internal/turfs/errors"
	"turfly/internal/turfs/repository"
	apperrors "turfly/pkg/errors"
	"turfly/pkg/logger"
	"turfly/pkg/model"
	"turfly/pkg/sanitizer"
)

type TurfService interface {
	Get(ctx context.Context, id string) (*model.Turf, error)
	List(ctx context.Context, filter model.TurfFilter) ([]*model.Turf, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ManagedBy returns the ids of the turfs owned by a known manager.
	ManagedBy(ctx context.Context, managerID string) ([]string, error)
}

type turfService struct {
	repo repository.TurfRepository
	log  *logger.Logger
}

func NewTurfService(repo repository.TurfRepository, log *logger.Logger) TurfService {
	return &turfService{repo: repo, log: log}
}

func (s *turfService) Get(ctx context.Context, id string) (*model.Turf, error) {
	id = sanitizer.SanitizeID(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Turf ID cannot be empty")
	}

	turf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, turfserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Turf", id)
		}
		s.log.Error("Failed to retrieve turf", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve turf", err)
	}
	return turf, nil
}

// List filters by location (case-insensitive substring) and sport (exact,
// case-insensitive). Empty fields match everything.
func (s *turfService) List(ctx context.Context, filter model.TurfFilter) ([]*model.Turf, error) {
	turfs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list turfs", "error", err)
		return nil, apperrors.Internal("Failed to retrieve turfs", err)
	}

	location := sanitizer.SanitizeQuery(filter.Location)
	sport := sanitizer.SanitizeQuery(filter.Sport)

	out := make([]*model.Turf, 0, len(turfs))
	for _, t := range turfs {
		if location != "" && !strings.Contains(strings.ToLower(t.Location), location) {
			continue
		}
		if sport != "" && strings.ToLower(t.Sport) != sport {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *turfService) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if err == nil {
		return true, nil
	}
	if apperrors.HasCode(err, apperrors.CodeNotFound) {
		return false, nil
	}
	return false, err
}

func (s *turfService) ManagedBy(ctx context.Context, managerID string) ([]string, error) {
	managerID = sanitizer.SanitizeID(managerID)
	if _, err := s.repo.FindManager(ctx, managerID); err != nil {
		if errors.Is(err, turfserrors.ErrManagerNotFound) {
			s.log.Warn("Unknown manager requested turf scope", "manager_id", managerID)
			return nil, apperrors.Forbidden("Manager account is not assigned to any turf")
		}
		return nil, apperrors.Internal("Failed to resolve manager", err)
	}

	turfs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve turfs", err)
	}

	ids := make([]string, 0)
	for _, t := range turfs {
		if t.ManagerID == managerID {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}
