package usage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// staticProvider serves fixed snapshots per tenant. Intended for tests.
type staticProvider struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]Snapshot
}

// NewStaticProvider returns a Provider serving the given snapshots.
// Unknown tenants produce ErrNoSnapshot rather than a zero snapshot.
func NewStaticProvider(snapshots map[uuid.UUID]Snapshot) Provider {
	copied := make(map[uuid.UUID]Snapshot, len(snapshots))
	for id, snap := range snapshots {
		copied[id] = snap
	}
	return &staticProvider{snapshots: copied}
}

func (p *staticProvider) Snapshot(ctx context.Context, tenantID uuid.UUID) (Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snap, ok := p.snapshots[tenantID]
	if !ok {
		return Snapshot{}, ErrNoSnapshot
	}
	return snap, nil
}
