package usage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CounterFunc returns the current usage for a tenant resource.
// Should be fast: cache or aggregate at repository level.
type CounterFunc func(ctx context.Context, tenantID uuid.UUID) (int64, error)

// Registry maps a Resource to its CounterFunc.
// Not thread-safe: register all counters at startup only.
type Registry map[Resource]CounterFunc

// NewRegistry returns a new, empty Registry.
func NewRegistry() Registry {
	return make(Registry)
}

// Register sets or replaces the CounterFunc for the given resource. Panics if fn is nil.
func (r Registry) Register(res Resource, fn CounterFunc) {
	if fn == nil {
		panic(fmt.Sprintf("usage: CounterFunc for resource %q cannot be nil", res))
	}
	r[res] = fn
}

// counterProvider assembles snapshots from per-resource counters.
type counterProvider struct {
	counters Registry
}

// NewCounterProvider returns a Provider built from the registry.
// All four resources must have a counter registered; a missing counter
// fails the snapshot rather than reporting zero usage.
func NewCounterProvider(counters Registry) Provider {
	return &counterProvider{counters: counters}
}

// Snapshot runs every registered counter for the tenant.
// The counters are treated as one logical read: they run within a single
// call so blocker sets are not computed against drifting usage.
func (p *counterProvider) Snapshot(ctx context.Context, tenantID uuid.UUID) (Snapshot, error) {
	var snap Snapshot

	for _, c := range []struct {
		res  Resource
		dest *int64
	}{
		{ResourcePets, &snap.Pets},
		{ResourceUsers, &snap.Users},
		{ResourceMessages, &snap.MonthlyMessages},
		{ResourceStorage, &snap.StorageBytes},
	} {
		counter, exists := p.counters[c.res]
		if !exists {
			return Snapshot{}, fmt.Errorf("%w: %q", ErrNoCounterRegistered, c.res)
		}

		current, err := counter(ctx, tenantID)
		if err != nil {
			return Snapshot{}, errors.Join(ErrSnapshotUnavailable, err)
		}
		*c.dest = current
	}

	return snap, nil
}
