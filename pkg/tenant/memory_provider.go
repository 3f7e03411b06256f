package tenant

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryProvider is an in-memory Provider implementation.
// Intended for tests and local development.
type memoryProvider struct {
	mu      sync.RWMutex
	tenants map[uuid.UUID]Tenant
}

// NewMemoryProvider returns a Provider backed by the given tenants.
func NewMemoryProvider(tenants ...Tenant) Provider {
	m := make(map[uuid.UUID]Tenant, len(tenants))
	for _, t := range tenants {
		m[t.ID] = t
	}
	return &memoryProvider{tenants: m}
}

// GetByID retrieves a tenant by ID, returning a copy so callers cannot
// mutate the stored record.
func (p *memoryProvider) GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.tenants[id]
	if !ok {
		return nil, ErrTenantNotFound
	}

	return &t, nil
}
