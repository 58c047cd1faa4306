package repository

import (
	"context"
	"slices"
	turfserrors "turfly/internal/turfs/errors"
	"turfly/pkg/model"
)

type TurfRepository interface {
	FindByID(ctx context.Context, id string) (*model.Turf, error)
	FindAll(ctx context.Context) ([]*model.Turf, error)
	FindManager(ctx context.Context, id string) (*model.Manager, error)
}

// catalogRepository serves a fixed catalog. Records are copied on the way
// out so callers cannot alter the seed.
type catalogRepository struct {
	turfs    []*model.Turf
	byID     map[string]*model.Turf
	managers map[string]*model.Manager
}

func NewCatalogRepository(turfs []*model.Turf, managers []*model.Manager) TurfRepository {
	r := &catalogRepository{
		turfs:    make([]*model.Turf, 0, len(turfs)),
		byID:     make(map[string]*model.Turf, len(turfs)),
		managers: make(map[string]*model.Manager, len(managers)),
	}
	for _, t := range turfs {
		c := cloneTurf(t)
		r.turfs = append(r.turfs, c)
		r.byID[c.ID] = c
	}
	for _, m := range managers {
		c := *m
		r.managers[c.ID] = &c
	}
	return r
}

// NewSeededRepository returns the catalog the service ships with.
func NewSeededRepository() TurfRepository {
	return NewCatalogRepository(SeedTurfs(), SeedManagers())
}

func (r *catalogRepository) FindByID(ctx context.Context, id string) (*model.Turf, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, ok := r.byID[id]
	if !ok {
		return nil, turfserrors.ErrNotFound
	}
	return cloneTurf(t), nil
}

func (r *catalogRepository) FindAll(ctx context.Context) ([]*model.Turf, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*model.Turf, 0, len(r.turfs))
	for _, t := range r.turfs {
		out = append(out, cloneTurf(t))
	}
	return out, nil
}

func (r *catalogRepository) FindManager(ctx context.Context, id string) (*model.Manager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, ok := r.managers[id]
	if !ok {
		return nil, turfserrors.ErrManagerNotFound
	}
	c := *m
	return &c, nil
}

func cloneTurf(t *model.Turf) *model.Turf {
	c := *t
	c.Amenities = slices.Clone(t.Amenities)
	return &c
}
