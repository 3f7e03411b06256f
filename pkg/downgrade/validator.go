package downgrade

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicore/clinickit/pkg/plan"
	"github.com/clinicore/clinickit/pkg/usage"
)

// PlanKeyResolver resolves the current plan key for a tenant.
type PlanKeyResolver func(ctx context.Context, tenantID uuid.UUID) (string, error)

// Validator checks whether a tenant's current usage fits inside a
// candidate plan's limits and reports what would be lost by moving.
type Validator struct {
	catalog  *plan.Catalog
	usage    usage.Provider
	resolver PlanKeyResolver
}

// NewValidator creates a downgrade Validator.
// Panics on nil dependencies to fail fast during initialization.
func NewValidator(catalog *plan.Catalog, provider usage.Provider, resolver PlanKeyResolver) *Validator {
	if catalog == nil {
		panic("downgrade: plan catalog is required")
	}
	if provider == nil {
		panic("downgrade: usage provider is required")
	}
	if resolver == nil {
		panic("downgrade: plan key resolver is required")
	}

	return &Validator{
		catalog:  catalog,
		usage:    provider,
		resolver: resolver,
	}
}

// Validate compares the tenant's current usage against the target plan's
// limits. The target key is matched case-insensitively; a miss fails with
// plan.ErrPlanNotFound naming the key. Usage is fetched exactly once so
// all blockers are computed from one consistent snapshot.
//
// Blockers are independent checks emitted in fixed order (pets, users,
// storage) for stable output. Messages are informational only and never
// block. Any collaborator failure aborts the validation; there is no
// best-effort result.
func (v *Validator) Validate(ctx context.Context, tenantID uuid.UUID, targetPlanKey string) (*Validation, error) {
	targetPlan, err := v.catalog.Get(targetPlanKey)
	if err != nil {
		return nil, err
	}

	snap, err := v.usage.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, errors.Join(ErrFailedToFetchUsage, err)
	}

	blockers := make([]Blocker, 0, 3)
	if b, blocked := petsBlocker(snap, targetPlan); blocked {
		blockers = append(blockers, b)
	}
	if b, blocked := usersBlocker(snap, targetPlan); blocked {
		blockers = append(blockers, b)
	}
	if b, blocked := storageBlocker(snap, targetPlan); blocked {
		blockers = append(blockers, b)
	}

	warnings, err := v.featureLossWarnings(ctx, tenantID, targetPlan)
	if err != nil {
		return nil, err
	}

	return &Validation{
		CanDowngrade: len(blockers) == 0,
		Blockers:     blockers,
		Warnings:     warnings,
		TargetPlan:   targetPlan,
		CurrentUsage: snap,
	}, nil
}

// petsBlocker checks the pet count against the target cap.
// An unlimited target never blocks regardless of usage.
func petsBlocker(snap usage.Snapshot, target plan.Plan) (Blocker, bool) {
	limit := target.Limits.MaxPets
	if limit == plan.Unlimited || snap.Pets <= limit {
		return Blocker{}, false
	}

	excess := snap.Pets - limit
	return Blocker{
		Resource: usage.ResourcePets,
		Current:  snap.Pets,
		NewLimit: limit,
		Excess:   excess,
		Message: fmt.Sprintf("You have %d pet records but the %s plan allows %d",
			snap.Pets, target.Name, limit),
		Suggestion: fmt.Sprintf("Archive or delete %d pet records to fit the %s plan",
			excess, target.Name),
	}, true
}

func usersBlocker(snap usage.Snapshot, target plan.Plan) (Blocker, bool) {
	limit := target.Limits.MaxUsers
	if limit == plan.Unlimited || snap.Users <= limit {
		return Blocker{}, false
	}

	excess := snap.Users - limit
	return Blocker{
		Resource: usage.ResourceUsers,
		Current:  snap.Users,
		NewLimit: limit,
		Excess:   excess,
		Message: fmt.Sprintf("You have %d active users but the %s plan allows %d",
			snap.Users, target.Name, limit),
		Suggestion: fmt.Sprintf("Deactivate %d user accounts to fit the %s plan",
			excess, target.Name),
	}, true
}

// storageBlocker compares at byte granularity but reports whole GiB,
// rounding current usage up so the suggestion never understates the
// amount to free.
func storageBlocker(snap usage.Snapshot, target plan.Plan) (Blocker, bool) {
	limitBytes := target.Limits.MaxStorageBytes
	if limitBytes == plan.Unlimited || snap.StorageBytes <= limitBytes {
		return Blocker{}, false
	}

	currentGiB := ceilGiB(snap.StorageBytes)
	limitGiB := limitBytes / plan.GiB
	excess := currentGiB - limitGiB
	return Blocker{
		Resource: usage.ResourceStorage,
		Current:  currentGiB,
		NewLimit: limitGiB,
		Excess:   excess,
		Message: fmt.Sprintf("You are using %d GiB of storage but the %s plan allows %d GiB",
			currentGiB, target.Name, limitGiB),
		Suggestion: fmt.Sprintf("Free up %d GiB of storage to fit the %s plan",
			excess, target.Name),
	}, true
}

func ceilGiB(bytes int64) int64 {
	return (bytes + plan.GiB - 1) / plan.GiB
}

// featureLossWarnings compares the current plan's feature set against the
// target's. A current plan key missing from the catalog yields no
// warnings (there is no recorded feature set to lose); a resolver failure
// aborts the validation.
func (v *Validator) featureLossWarnings(ctx context.Context, tenantID uuid.UUID, target plan.Plan) ([]Warning, error) {
	currentKey, err := v.resolver(ctx, tenantID)
	if err != nil {
		return nil, errors.Join(ErrFailedToResolvePlan, err)
	}

	currentPlan, err := v.catalog.Get(currentKey)
	if err != nil {
		return []Warning{}, nil
	}

	warnings := make([]Warning, 0)
	for _, f := range currentPlan.Features {
		if !target.HasFeature(f) {
			warnings = append(warnings, Warning{
				Type: WarningFeatureLoss,
				Message: fmt.Sprintf("Downgrading to %s removes the %s feature",
					target.Name, f),
			})
		}
	}

	return warnings, nil
}
