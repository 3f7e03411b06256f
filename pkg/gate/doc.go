// Package gate is the generic access gate: it turns "is this tenant
// entitled" into admit/deny decisions for pages, navigation sections,
// and protected routes, all through one predicate.
//
//	active := gate.HasActiveSubscription(t, time.Now().UTC())
//	if !gate.IsEntitled(active, gate.Resource{RequiresSubscription: true}) {
//		// deny; render the section locked or redirect
//	}
//
// The three surfaces share identical semantics:
//
//   - Route guard: gate.Middleware redirects non-entitled requests to
//     the subscription-management path with a ?reason= code
//   - Section gating: every Section carries RequiresSubscription;
//     ValidateSections enforces that exactly one section (subscription
//     management) stays reachable without entitlement
//   - Deep links: SelectSection forces non-entitled tenants to the
//     unprotected section and falls back to a fixed default for unknown
//     requests by entitled tenants
//
// Denied sections should render visibly locked rather than hidden, so
// the tenant understands the feature exists and why it is inaccessible.
//
// The gate holds no state and performs no I/O; any failure to obtain the
// tenant record aborts the decision instead of defaulting to allowed.
package gate
