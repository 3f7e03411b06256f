// Package tenant defines the tenant record and the reader interface the
// entitlement engine consumes.
//
// A Tenant is one clinic account. Its subscription fields (status, trial
// window, plan key) are owned by the persistence layer and written by the
// payment-provider integration; this package only reads them. The
// entitlement packages (trial, gate, downgrade) derive all access decisions
// from these fields at evaluation time.
//
// # Usage
//
//	provider := tenant.NewMemoryProvider(tenant.Tenant{
//		ID:                 id,
//		PlanKey:            "PROFESIONAL",
//		SubscriptionStatus: tenant.StatusTrialing,
//		IsTrialPeriod:      true,
//		TrialEndsAt:        &endsAt,
//		Active:             true,
//	})
//
//	t, err := provider.GetByID(ctx, id)
//	if errors.Is(err, tenant.ErrTenantNotFound) {
//		// handle missing tenant
//	}
//
// Request-scoped access goes through the context helpers:
//
//	ctx = tenant.WithTenant(ctx, t)
//	t, ok := tenant.FromContext(ctx)
//
// Caching is optional and only fronts the record lookup, never the
// entitlement decision itself. NewInMemoryCache suits single instances,
// NewRedisCache multi-replica deployments.
package tenant
