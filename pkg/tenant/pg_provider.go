package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicore/clinickit/pkg/pg"
)

const getTenantQuery = `
SELECT id, name, subdomain, plan_key, subscription_status,
       is_trial_period, trial_ends_at, active, created_at
FROM tenants
WHERE id = $1
`

// pgProvider loads tenant records from PostgreSQL.
type pgProvider struct {
	pool *pgxpool.Pool
}

// NewPGProvider returns a Provider backed by the given connection pool.
// Panics on a nil pool to fail fast during initialization.
func NewPGProvider(pool *pgxpool.Pool) Provider {
	if pool == nil {
		panic("tenant: pgxpool.Pool is required")
	}
	return &pgProvider{pool: pool}
}

func (p *pgProvider) GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	var t Tenant

	row := p.pool.QueryRow(ctx, getTenantQuery, id)
	err := row.Scan(
		&t.ID, &t.Name, &t.Subdomain, &t.PlanKey, &t.SubscriptionStatus,
		&t.IsTrialPeriod, &t.TrialEndsAt, &t.Active, &t.CreatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrTenantNotFound
		}
		return nil, errors.Join(ErrFailedToLoadTenant, err)
	}

	return &t, nil
}
