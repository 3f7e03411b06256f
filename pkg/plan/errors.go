package plan

import "errors"

var (
	// ErrPlanNotFound is returned when a plan key is not in the catalog.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrInvalidPlanConfiguration is returned when catalog entries are inconsistent.
	ErrInvalidPlanConfiguration = errors.New("invalid plan configuration")

	// ErrFailedToLoadPlans is returned when a plan source cannot be read.
	ErrFailedToLoadPlans = errors.New("failed to load plans")
)
