package usage

import (
	"context"

	"github.com/google/uuid"
)

// Resource identifies a countable tenant resource.
type Resource string

const (
	ResourcePets     Resource = "pets"
	ResourceUsers    Resource = "users"
	ResourceMessages Resource = "messages"
	ResourceStorage  Resource = "storage"
)

// Snapshot holds point-in-time usage counters for a tenant.
// Computed on demand from the resource domain; never persisted here.
type Snapshot struct {
	Pets            int64 `json:"pets"`
	Users           int64 `json:"users"`
	MonthlyMessages int64 `json:"monthly_messages"`
	StorageBytes    int64 `json:"storage_bytes"`
}

// Provider returns current resource usage for a tenant.
// Implementations may be eventually consistent with the resource domain;
// a failure must be returned as an error, never as a zero snapshot,
// because entitlement decisions built on a fabricated snapshot fail open.
type Provider interface {
	Snapshot(ctx context.Context, tenantID uuid.UUID) (Snapshot, error)
}
