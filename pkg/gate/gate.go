package gate

import (
	"time"

	"github.com/clinicore/clinickit/pkg/tenant"
	"github.com/clinicore/clinickit/pkg/trial"
)

// Resource describes anything the gate can protect: a page, a tab, a route.
type Resource struct {
	RequiresSubscription bool
}

// IsEntitled is the single entitlement predicate shared by route guards,
// tab gating, and deep-link selection. A resource that does not require
// a subscription is always allowed.
func IsEntitled(subscriptionActive bool, res Resource) bool {
	return !res.RequiresSubscription || subscriptionActive
}

// HasActiveSubscription reports whether the tenant currently holds an
// entitling subscription: paid-active always, trialing only while the
// trial's calendar day has not passed (a trial ending later today is
// still active). Past-due and cancelled tenants are never active
// regardless of dates.
func HasActiveSubscription(t *tenant.Tenant, now time.Time) bool {
	switch t.SubscriptionStatus {
	case tenant.StatusActive:
		return true
	case tenant.StatusTrialing:
		if t.TrialEndsAt == nil {
			return false
		}
		return trial.DaysRemainingAt(*t.TrialEndsAt, now) >= 0
	default:
		return false
	}
}

// Denial reason codes carried to the subscription-management page so it
// can render a context-specific message.
const (
	ReasonTrialExpired         = "trial_expired"
	ReasonPastDue              = "past_due"
	ReasonCancelled            = "subscription_cancelled"
	ReasonSubscriptionRequired = "subscription_required"
)

// DenialReason maps the tenant's subscription state to a machine-readable
// reason code. Only meaningful when HasActiveSubscription is false.
func DenialReason(t *tenant.Tenant) string {
	switch t.SubscriptionStatus {
	case tenant.StatusTrialing:
		return ReasonTrialExpired
	case tenant.StatusPastDue:
		return ReasonPastDue
	case tenant.StatusCancelled:
		return ReasonCancelled
	default:
		return ReasonSubscriptionRequired
	}
}
