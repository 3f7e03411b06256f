package plan

// Unlimited indicates no limit for a resource (-1 chosen for SQL compatibility).
const Unlimited int64 = -1

// GiB is the unit used for storage limits in plan definitions.
const GiB int64 = 1 << 30

// Feature represents a plan-specific capability that can be enabled/disabled.
type Feature string

const (
	FeatureMessaging       Feature = "messaging"
	FeatureInventory       Feature = "inventory"
	FeatureReports         Feature = "reports"
	FeatureAutomations     Feature = "automations"
	FeatureAPI             Feature = "api"
	FeaturePrioritySupport Feature = "priority_support"
)

// Limits holds the countable resource caps for a plan.
// Any field may be Unlimited; a finite cap never represents "no limit".
type Limits struct {
	MaxPets            int64 `json:"max_pets" yaml:"max_pets"`
	MaxUsers           int64 `json:"max_users" yaml:"max_users"`
	MaxMonthlyMessages int64 `json:"max_monthly_messages" yaml:"max_monthly_messages"`
	MaxStorageBytes    int64 `json:"max_storage_bytes" yaml:"max_storage_bytes"`
}

// Plan describes an immutable subscription plan catalog entry.
// Created at deploy time; never mutated at runtime.
type Plan struct {
	Key      string    `json:"key" yaml:"key"`
	Name     string    `json:"name" yaml:"name"`
	TierRank int       `json:"tier_rank" yaml:"tier_rank"`
	Limits   Limits    `json:"limits" yaml:"limits"`
	Features []Feature `json:"features" yaml:"features"`
}

// HasFeature reports whether the plan includes the given feature.
func (p Plan) HasFeature(f Feature) bool {
	for _, have := range p.Features {
		if have == f {
			return true
		}
	}
	return false
}
