// Package downgrade validates plan downgrades against current tenant
// usage. It answers "can this tenant move to that plan right now", with
// hard numeric blockers (usage over the target limit) and non-blocking
// feature-loss warnings.
//
//	validator := downgrade.NewValidator(catalog, usageProvider, resolver)
//
//	result, err := validator.Validate(ctx, tenantID, "basico")
//	if errors.Is(err, plan.ErrPlanNotFound) {
//		// client sent an unknown plan key: configuration error,
//		// not "downgrade blocked by usage"
//	}
//
//	if !result.CanDowngrade {
//		for _, step := range downgrade.ResolutionSteps(result) {
//			// render actionable steps
//		}
//	}
//
// Results are advisory values recomputed per request; nothing here locks
// or persists. A failed usage fetch aborts the validation instead of
// producing a best-effort answer.
package downgrade
