package usage

import "errors"

var (
	// ErrNoSnapshot is returned when usage for a tenant cannot be determined.
	ErrNoSnapshot = errors.New("no usage snapshot for tenant")

	// ErrNoCounterRegistered is returned when a required resource counter is missing.
	ErrNoCounterRegistered = errors.New("no usage counter registered for resource")

	// ErrSnapshotUnavailable is returned when the usage backend cannot be queried.
	ErrSnapshotUnavailable = errors.New("usage snapshot unavailable")
)
