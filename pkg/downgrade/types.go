package downgrade

import (
	"github.com/clinicore/clinickit/pkg/plan"
	"github.com/clinicore/clinickit/pkg/usage"
)

// Blocker is a hard, numeric reason a downgrade cannot proceed:
// current usage exceeds the target plan's limit for one resource.
// Storage blockers are expressed in whole GiB; pets and users in counts.
type Blocker struct {
	Resource   usage.Resource `json:"resource"`
	Current    int64          `json:"current"`
	NewLimit   int64          `json:"new_limit"`
	Excess     int64          `json:"excess"`
	Message    string         `json:"message"`
	Suggestion string         `json:"suggestion,omitempty"`
}

// WarningFeatureLoss marks a non-blocking advisory about a feature the
// tenant would lose by downgrading.
const WarningFeatureLoss = "feature_loss"

// Warning is a non-blocking advisory accompanying a validation result.
type Warning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Validation is the advisory result of a downgrade check. Computed fresh
// per request and never persisted; the caller decides whether to proceed.
type Validation struct {
	CanDowngrade bool           `json:"can_downgrade"`
	Blockers     []Blocker      `json:"blockers"`
	Warnings     []Warning      `json:"warnings"`
	TargetPlan   plan.Plan      `json:"target_plan"`
	CurrentUsage usage.Snapshot `json:"current_usage"`
}

// ResolutionSteps maps each blocker with a suggestion to that suggestion,
// preserving blocker order. Blockers without a suggestion contribute no
// step. When at least one step was produced, a final proceed step is
// appended; the trailing step is conditioned on prior steps existing,
// not on CanDowngrade.
func ResolutionSteps(v *Validation) []string {
	steps := make([]string, 0, len(v.Blockers)+1)
	for _, b := range v.Blockers {
		if b.Suggestion != "" {
			steps = append(steps, b.Suggestion)
		}
	}

	if len(steps) > 0 {
		steps = append(steps, "Once resolved, you can proceed with the downgrade")
	}

	return steps
}
