package downgrade

import "errors"

var (
	// ErrFailedToResolvePlan is returned when the tenant's current plan
	// cannot be determined.
	ErrFailedToResolvePlan = errors.New("failed to resolve tenant plan")

	// ErrFailedToFetchUsage is returned when the usage snapshot provider fails.
	// The validation is aborted; a stale or fabricated usage basis must
	// never feed a downgrade decision.
	ErrFailedToFetchUsage = errors.New("failed to fetch tenant usage")
)
