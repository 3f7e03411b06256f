package usage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// snapshotQuery aggregates all four counters in one round trip so the
// snapshot is a single logical read of the resource domain.
const snapshotQuery = `
SELECT
	(SELECT COUNT(*) FROM pets WHERE tenant_id = $1 AND deleted_at IS NULL),
	(SELECT COUNT(*) FROM users WHERE tenant_id = $1 AND active),
	(SELECT COUNT(*) FROM messages WHERE tenant_id = $1 AND sent_at >= date_trunc('month', now())),
	(SELECT COALESCE(SUM(size_bytes), 0) FROM attachments WHERE tenant_id = $1)
`

// pgProvider computes usage snapshots with PostgreSQL aggregates.
// Counts rely on tenant_id indexes; there is no caching here, the
// snapshot must reflect the current instant.
type pgProvider struct {
	pool *pgxpool.Pool
}

// NewPGProvider returns a Provider backed by the given connection pool.
// Panics on a nil pool to fail fast during initialization.
func NewPGProvider(pool *pgxpool.Pool) Provider {
	if pool == nil {
		panic("usage: pgxpool.Pool is required")
	}
	return &pgProvider{pool: pool}
}

func (p *pgProvider) Snapshot(ctx context.Context, tenantID uuid.UUID) (Snapshot, error) {
	var snap Snapshot

	row := p.pool.QueryRow(ctx, snapshotQuery, tenantID)
	if err := row.Scan(&snap.Pets, &snap.Users, &snap.MonthlyMessages, &snap.StorageBytes); err != nil {
		return Snapshot{}, errors.Join(ErrSnapshotUnavailable, err)
	}

	return snap, nil
}
