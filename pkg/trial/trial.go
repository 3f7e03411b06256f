package trial

import (
	"fmt"
	"time"

	"github.com/clinicore/clinickit/pkg/tenant"
)

// Status classifies where a tenant stands in its trial window.
type Status string

const (
	StatusActive     Status = "active"
	StatusEndingSoon Status = "ending_soon"
	StatusExpired    Status = "expired"
	StatusConverted  Status = "converted"

	// StatusGracePeriod is a post-expiry reprieve assigned by the payment
	// collaborator. The calculator never produces it but downstream code
	// must treat it as a valid classification it can receive.
	StatusGracePeriod Status = "grace_period"
)

// Severity drives the banner styling for a trial status.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

// BlockedFeature marks a feature as inaccessible with the reason why,
// so the UI can render it locked rather than hidden.
type BlockedFeature struct {
	Feature string `json:"feature"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// TrialStatus is the derived, ephemeral classification of a tenant's
// trial window. It is recomputed on every call and must never be cached
// beyond request scope: entitlement reflects the current instant.
type TrialStatus struct {
	Status            Status           `json:"status"`
	DaysRemaining     int              `json:"days_remaining"`
	DisplayMessage    string           `json:"display_message"`
	BannerSeverity    Severity         `json:"banner_severity"`
	ShowUpgradePrompt bool             `json:"show_upgrade_prompt"`
	BlockedFeatures   []BlockedFeature `json:"blocked_features"`
}

// endingSoonWindow is the number of whole days remaining at or below
// which a trial counts as ending soon.
const endingSoonWindow = 3

// blockedOnExpiry is the fixed feature list locked when a trial expires.
// Order is stable for UI rendering and test assertions.
var blockedOnExpiry = []string{
	"pets",
	"appointments",
	"inventory",
	"reports",
	"automations",
	"messaging",
}

const expiredReason = "Trial expired"

// Calculate classifies the tenant's trial window at the current instant.
func Calculate(t *tenant.Tenant) TrialStatus {
	return CalculateAt(t, time.Now().UTC())
}

// CalculateAt classifies the tenant's trial window at a given time.
// Pure and deterministic given the tenant and now; useful for tests
// with fixed time values.
func CalculateAt(t *tenant.Tenant, now time.Time) TrialStatus {
	// Converted/paid tenants are governed by payment-status fields
	// elsewhere; this classifier only covers the trial window.
	if !t.IsTrialPeriod || t.TrialEndsAt == nil {
		return TrialStatus{
			Status:            StatusConverted,
			DaysRemaining:     0,
			DisplayMessage:    "Subscription active",
			BannerSeverity:    SeverityInfo,
			ShowUpgradePrompt: false,
			BlockedFeatures:   []BlockedFeature{},
		}
	}

	days := DaysRemainingAt(*t.TrialEndsAt, now)

	var status Status
	switch {
	case days < 0:
		status = StatusExpired
	case days <= endingSoonWindow:
		status = StatusEndingSoon
	default:
		status = StatusActive
	}

	blocked := []BlockedFeature{}
	if status == StatusExpired {
		blocked = make([]BlockedFeature, 0, len(blockedOnExpiry))
		for _, feature := range blockedOnExpiry {
			blocked = append(blocked, BlockedFeature{
				Feature: feature,
				Allowed: false,
				Reason:  expiredReason,
			})
		}
	}

	return TrialStatus{
		Status:            status,
		DaysRemaining:     days,
		DisplayMessage:    displayMessage(status, days),
		BannerSeverity:    SeverityFor(status),
		ShowUpgradePrompt: status == StatusEndingSoon || status == StatusExpired,
		BlockedFeatures:   blocked,
	}
}

// DaysRemainingAt returns the number of whole calendar days between now
// and the trial end, using UTC day boundaries.
//
// A trial ending at any point on the current calendar day is the "last
// day" and counts as 0. Future partial days truncate down (ends in 2.9
// days reports 2); past remainders truncate toward greater magnitude
// (ended any time yesterday reports -1). This asymmetry is deliberate
// and every derived message depends on it; do not replace it with a
// symmetric rounding rule.
func DaysRemainingAt(endsAt, now time.Time) int {
	endDay := startOfDayUTC(endsAt)
	nowDay := startOfDayUTC(now)
	return int(endDay.Sub(nowDay) / (24 * time.Hour))
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SeverityFor maps every status, including the externally-driven
// grace_period, so downstream matching stays exhaustive.
func SeverityFor(s Status) Severity {
	switch s {
	case StatusActive:
		return SeveritySuccess
	case StatusEndingSoon, StatusGracePeriod:
		return SeverityWarning
	case StatusExpired:
		return SeverityDanger
	default:
		return SeverityInfo
	}
}

// displayMessage renders the user-facing banner text. The shape per day
// count is fixed: a distinct last-day message at 0, "tomorrow" at 1, and
// singular/plural agreement at exactly 1 everywhere else.
func displayMessage(status Status, days int) string {
	switch status {
	case StatusExpired:
		return fmt.Sprintf("Your trial expired %s ago", pluralDays(-days))
	case StatusEndingSoon:
		switch days {
		case 0:
			return "Today is the last day of your trial"
		case 1:
			return "Your trial ends tomorrow"
		default:
			return fmt.Sprintf("Your trial ends in %d days", days)
		}
	case StatusActive:
		return fmt.Sprintf("%s remaining in your trial", pluralDays(days))
	default:
		return "Subscription active"
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
