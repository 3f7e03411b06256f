package apikey

import (
	"context"
	"fmt"
	"time"
)

// Grant is the decoded capability set behind a presented API key.
// Key material format and hashing live with the issuing collaborator;
// this package treats the grant as read-only input.
type Grant struct {
	Scopes    []string   `json:"scopes"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	RateLimit int        `json:"rate_limit"`
}

// IsExpired reports whether the grant has passed its expiry.
// Grants without an expiry never expire.
func (g *Grant) IsExpired(now time.Time) bool {
	return g.ExpiresAt != nil && now.After(*g.ExpiresAt)
}

// IsUsable reports whether the grant is active and unexpired.
func (g *Grant) IsUsable(now time.Time) bool {
	return g.IsActive && !g.IsExpired(now)
}

// GrantReader loads the grant for a presented key's decoded identity.
type GrantReader interface {
	// GrantByKeyID returns the grant for the given key identity.
	// Returns ErrGrantNotFound when the key is unknown.
	GrantByKeyID(ctx context.Context, keyID string) (*Grant, error)
}

// Authorize checks a grant against the scopes a request requires.
// Fails closed: a revoked or expired grant is rejected before any scope
// comparison, and a missing scope names the full requirement.
func Authorize(g *Grant, now time.Time, required ...string) error {
	if g == nil || !g.IsActive {
		return ErrGrantRevoked
	}
	if g.IsExpired(now) {
		return ErrGrantExpired
	}

	if !HasAllScopes(g.Scopes, required) {
		return fmt.Errorf("%w: requires %v", ErrInsufficientScope, required)
	}

	return nil
}
