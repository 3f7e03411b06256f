package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when a tenant cannot be found.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrNoTenantInContext is returned when no tenant is found in context.
	ErrNoTenantInContext = errors.New("no tenant in context")

	// ErrInactiveTenant is returned when trying to use an inactive tenant.
	ErrInactiveTenant = errors.New("tenant is inactive")

	// ErrCacheUnavailable is returned when a cache backend cannot be reached.
	ErrCacheUnavailable = errors.New("tenant cache unavailable")

	// ErrFailedToLoadTenant is returned when the tenant store cannot be queried.
	// Distinct from ErrTenantNotFound: a backend failure must never read as
	// a missing tenant.
	ErrFailedToLoadTenant = errors.New("failed to load tenant")
)
