package gate_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/clinicore/clinickit/pkg/gate"
	"github.com/clinicore/clinickit/pkg/tenant"
)

var now = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func tenantWith(status tenant.SubscriptionStatus, trialEndsAt *time.Time) *tenant.Tenant {
	return &tenant.Tenant{
		ID:                 uuid.New(),
		Name:               "Clinica del Sol",
		SubscriptionStatus: status,
		IsTrialPeriod:      status == tenant.StatusTrialing,
		TrialEndsAt:        trialEndsAt,
		Active:             true,
	}
}

func TestIsEntitled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		subscriptionActive bool
		requiresSub        bool
		want               bool
	}{
		{"unprotected resource, inactive subscription", false, false, true},
		{"unprotected resource, active subscription", true, false, true},
		{"protected resource, inactive subscription", false, true, false},
		{"protected resource, active subscription", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := gate.Resource{RequiresSubscription: tt.requiresSub}
			assert.Equal(t, tt.want, gate.IsEntitled(tt.subscriptionActive, res))
		})
	}
}

func TestHasActiveSubscription(t *testing.T) {
	t.Parallel()

	laterToday := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	earlierToday := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	nextWeek := now.AddDate(0, 0, 7)

	tests := []struct {
		name string
		tn   *tenant.Tenant
		want bool
	}{
		{"paid active", tenantWith(tenant.StatusActive, nil), true},
		{"trialing with future end", tenantWith(tenant.StatusTrialing, &nextWeek), true},
		{"trial ending later today", tenantWith(tenant.StatusTrialing, &laterToday), true},
		{"trial ended earlier today still active", tenantWith(tenant.StatusTrialing, &earlierToday), true},
		{"trial ended yesterday", tenantWith(tenant.StatusTrialing, &yesterday), false},
		{"trialing without end date", tenantWith(tenant.StatusTrialing, nil), false},
		{"past due with future trial date", tenantWith(tenant.StatusPastDue, &nextWeek), false},
		{"cancelled", tenantWith(tenant.StatusCancelled, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gate.HasActiveSubscription(tt.tn, now))
		})
	}
}

func TestDenialReason(t *testing.T) {
	t.Parallel()

	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name string
		tn   *tenant.Tenant
		want string
	}{
		{"expired trial", tenantWith(tenant.StatusTrialing, &yesterday), gate.ReasonTrialExpired},
		{"past due", tenantWith(tenant.StatusPastDue, nil), gate.ReasonPastDue},
		{"cancelled", tenantWith(tenant.StatusCancelled, nil), gate.ReasonCancelled},
		{"unrecognized status", tenantWith(tenant.SubscriptionStatus("paused"), nil), gate.ReasonSubscriptionRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gate.DenialReason(tt.tn))
		})
	}
}
