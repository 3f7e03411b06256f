// Package plan provides the immutable plan catalog: per-tier resource
// limits, feature sets, and the ascending tier ordering used to decide
// whether a plan change is an upgrade or a downgrade.
//
// Plans are loaded once at startup (in memory or from a YAML file) and
// never mutated at runtime. Lookups are case-insensitive against the
// canonical uppercase plan key; a miss is an explicit ErrPlanNotFound
// naming the offending key, never a silent default.
//
//	catalog := plan.DefaultCatalog()
//
//	p, err := catalog.Get("profesional") // case-insensitive
//	if errors.Is(err, plan.ErrPlanNotFound) {
//		// configuration error, not a usage problem
//	}
//
//	if catalog.IsDowngrade(current.PlanKey, "BASICO") {
//		// run the downgrade validator before proceeding
//	}
//
// Resource limits use plan.Unlimited (-1) as the "no limit" sentinel;
// a finite cap never means unlimited.
package plan
