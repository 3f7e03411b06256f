package plan

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Catalog is an ordered, immutable table of plans keyed by canonical
// uppercase plan key. Lookups are case-insensitive.
type Catalog struct {
	// These are treated as immutable after construction; thread safety
	// depends on no runtime modifications.
	plans map[string]Plan
	order []string // canonical keys in ascending tier order
}

// NewCatalog builds a catalog from the given plans.
// Keys are canonicalized to uppercase; tier ranks must be positive and
// unique so the ascending tier ordering is well defined.
func NewCatalog(plans []Plan) (*Catalog, error) {
	byKey := make(map[string]Plan, len(plans))
	seenRanks := make(map[int]string, len(plans))

	for _, p := range plans {
		key := strings.ToUpper(strings.TrimSpace(p.Key))
		if key == "" {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("plan %q has an empty key", p.Name))
		}
		if _, exists := byKey[key]; exists {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("duplicate plan key %q", key))
		}
		if p.TierRank <= 0 {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("plan %q has non-positive tier rank %d", key, p.TierRank))
		}
		if other, exists := seenRanks[p.TierRank]; exists {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("plans %q and %q share tier rank %d", other, key, p.TierRank))
		}

		p.Key = key
		byKey[key] = p
		seenRanks[p.TierRank] = key
	}

	order := make([]string, 0, len(byKey))
	for key := range byKey {
		order = append(order, key)
	}
	slices.SortFunc(order, func(a, b string) int {
		return byKey[a].TierRank - byKey[b].TierRank
	})

	return &Catalog{plans: byKey, order: order}, nil
}

// Get resolves a plan by key, case-insensitively.
// A miss returns an error naming the offending key, never a default plan.
func (c *Catalog) Get(key string) (Plan, error) {
	p, exists := c.plans[strings.ToUpper(strings.TrimSpace(key))]
	if !exists {
		return Plan{}, fmt.Errorf("%w: %q", ErrPlanNotFound, key)
	}
	return p, nil
}

// Plans returns all catalog entries in ascending tier order.
func (c *Catalog) Plans() []Plan {
	result := make([]Plan, 0, len(c.order))
	for _, key := range c.order {
		result = append(result, c.plans[key])
	}
	return result
}

// TierOrder returns the canonical plan keys in ascending tier order.
func (c *Catalog) TierOrder() []string {
	return slices.Clone(c.order)
}

// IsDowngrade reports whether moving from currentKey to targetKey lowers
// the tier, comparing positions in the ascending tier order.
//
// An unrecognized key has position -1. As a consequence an unrecognized
// current plan never registers as a downgrade (-1 > x is false for every
// real position), while an unrecognized target is treated as strictly
// lower-tier than any recognized current plan (x > -1). Callers relying
// on this asymmetry include the plan-change request handler.
func (c *Catalog) IsDowngrade(currentKey, targetKey string) bool {
	currentPos := slices.Index(c.order, strings.ToUpper(strings.TrimSpace(currentKey)))
	targetPos := slices.Index(c.order, strings.ToUpper(strings.TrimSpace(targetKey)))
	return currentPos > targetPos
}

// DefaultCatalog returns the production plan tiers.
// Storage limits are whole GiB; message limits are informational only
// and never block a downgrade.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog([]Plan{
		{
			Key:      "BASICO",
			Name:     "Basico",
			TierRank: 1,
			Limits: Limits{
				MaxPets:            500,
				MaxUsers:           3,
				MaxMonthlyMessages: 1000,
				MaxStorageBytes:    5 * GiB,
			},
			Features: []Feature{FeatureMessaging},
		},
		{
			Key:      "PROFESIONAL",
			Name:     "Profesional",
			TierRank: 2,
			Limits: Limits{
				MaxPets:            2000,
				MaxUsers:           10,
				MaxMonthlyMessages: 5000,
				MaxStorageBytes:    20 * GiB,
			},
			Features: []Feature{
				FeatureMessaging,
				FeatureInventory,
				FeatureReports,
				FeatureAutomations,
			},
		},
		{
			Key:      "EMPRESARIAL",
			Name:     "Empresarial",
			TierRank: 3,
			Limits: Limits{
				MaxPets:            Unlimited,
				MaxUsers:           Unlimited,
				MaxMonthlyMessages: Unlimited,
				MaxStorageBytes:    100 * GiB,
			},
			Features: []Feature{
				FeatureMessaging,
				FeatureInventory,
				FeatureReports,
				FeatureAutomations,
				FeatureAPI,
				FeaturePrioritySupport,
			},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("plan: default catalog is invalid: %v", err))
	}
	return catalog
}
