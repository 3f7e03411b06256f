package plan

import (
	"context"
	"errors"
	"slices"
)

// Source defines how plan definitions are loaded into a catalog.
type Source interface {
	Load(ctx context.Context) ([]Plan, error)
}

// NewCatalogFromSource loads plans from the given source and builds a catalog.
func NewCatalogFromSource(ctx context.Context, src Source) (*Catalog, error) {
	plans, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}
	return NewCatalog(plans)
}

// inMemSource implements Source over a static plan slice.
type inMemSource struct {
	plans []Plan
}

// NewInMemSource returns an in-memory Source with a deep copy of the given plans.
func NewInMemSource(plans ...Plan) Source {
	plansCopy := make([]Plan, len(plans))
	for i, p := range plans {
		p.Features = slices.Clone(p.Features)
		plansCopy[i] = p
	}
	return &inMemSource{plans: plansCopy}
}

// Load returns a copy of the configured plans.
func (s *inMemSource) Load(ctx context.Context) ([]Plan, error) {
	plansCopy := make([]Plan, len(s.plans))
	for i, p := range s.plans {
		p.Features = slices.Clone(p.Features)
		plansCopy[i] = p
	}
	return plansCopy, nil
}
