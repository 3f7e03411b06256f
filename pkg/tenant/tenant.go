package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the current billing state of a tenant.
// Transitions are written by the payment-webhook collaborator; this
// package only reads the resulting value.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusTrialing  SubscriptionStatus = "trialing"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusCancelled SubscriptionStatus = "cancelled"
)

// Tenant represents one clinic account, the unit of subscription
// and resource limits.
type Tenant struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	Subdomain          string             `json:"subdomain"`
	PlanKey            string             `json:"plan_key"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	IsTrialPeriod      bool               `json:"is_trial_period"`
	TrialEndsAt        *time.Time         `json:"trial_ends_at,omitempty"`
	Active             bool               `json:"active"`
	CreatedAt          time.Time          `json:"created_at"`
}

// IsTrialing returns true if the tenant's subscription is in trial status.
func (t *Tenant) IsTrialing() bool {
	return t.SubscriptionStatus == StatusTrialing
}

// IsSubscribed returns true if the tenant has a paid, active subscription.
func (t *Tenant) IsSubscribed() bool {
	return t.SubscriptionStatus == StatusActive
}

// IsPastDue returns true if the last payment for the tenant failed.
func (t *Tenant) IsPastDue() bool {
	return t.SubscriptionStatus == StatusPastDue
}

// IsCancelled returns true if the tenant's subscription was cancelled.
func (t *Tenant) IsCancelled() bool {
	return t.SubscriptionStatus == StatusCancelled
}

// Provider loads tenant records from a data source.
// Implementations must return trial timestamps as absolute instants
// so day-boundary arithmetic is stable regardless of caller timezone.
type Provider interface {
	// GetByID retrieves a tenant by its unique identifier.
	// Returns ErrTenantNotFound if no tenant matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
}
