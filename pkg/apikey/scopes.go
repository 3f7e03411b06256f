package apikey

import (
	"slices"
	"strings"
)

const (
	// ActionRead grants read-only access to a resource.
	ActionRead = "read"
	// ActionWrite grants mutating access to a resource.
	ActionWrite = "write"

	// scopeSeparator splits a scope into action and resource.
	scopeSeparator = ":"
)

// scopeResources lists every resource the API exposes. The scope
// registry and all bundles are computed from this list so growth here
// can never desynchronize a bundle from its invariant.
var scopeResources = []string{
	"pets",
	"appointments",
	"inventory",
	"reports",
	"automations",
	"messages",
}

var scopeActions = []string{ActionRead, ActionWrite}

// registry holds every known scope, read scopes first within each resource.
var registry = buildRegistry()

func buildRegistry() []string {
	scopes := make([]string, 0, len(scopeResources)*len(scopeActions))
	for _, res := range scopeResources {
		for _, action := range scopeActions {
			scopes = append(scopes, action+scopeSeparator+res)
		}
	}
	return scopes
}

// Scope builds an "action:resource" capability string.
func Scope(action, resource string) string {
	return action + scopeSeparator + resource
}

// SplitScope splits a capability string into action and resource.
// Returns ok=false for anything not shaped action:resource.
func SplitScope(scope string) (action, resource string, ok bool) {
	action, resource, ok = strings.Cut(scope, scopeSeparator)
	if !ok || action == "" || resource == "" {
		return "", "", false
	}
	return action, resource, true
}

// KnownScopes returns a copy of the full scope registry.
func KnownScopes() []string {
	return slices.Clone(registry)
}

// IsKnownScope reports whether the scope is in the registry.
func IsKnownScope(scope string) bool {
	return slices.Contains(registry, scope)
}

// HasScope checks if the granted set contains the required scope.
// Matching is exact; there are no wildcard grants.
func HasScope(granted []string, required string) bool {
	return slices.Contains(granted, required)
}

// HasAnyScope checks if the granted set intersects the required set.
// Returns false on either empty input: an empty requirement set cannot
// be satisfied by intersection, and an empty grant satisfies nothing.
func HasAnyScope(granted, required []string) bool {
	if len(granted) == 0 || len(required) == 0 {
		return false
	}

	for _, req := range required {
		if HasScope(granted, req) {
			return true
		}
	}
	return false
}

// HasAllScopes checks if the granted set covers every required scope.
// Vacuously true when required is empty, for any granted set.
func HasAllScopes(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(granted) == 0 {
		return false
	}

	for _, req := range required {
		if !HasScope(granted, req) {
			return false
		}
	}
	return true
}

// Validation partitions candidate scopes against the registry.
// Invalid scopes are data for the caller's policy decision (reject the
// request vs. drop them), not an error.
type Validation struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}

// ValidateScopes partitions candidates into known and unknown scopes,
// preserving input order. An unrecognized scope string is never silently
// accepted; callers assembling a grant from user input must reject any
// candidate that lands in Invalid.
func ValidateScopes(candidates []string) Validation {
	v := Validation{
		Valid:   make([]string, 0, len(candidates)),
		Invalid: make([]string, 0),
	}

	for _, scope := range candidates {
		if IsKnownScope(scope) {
			v.Valid = append(v.Valid, scope)
		} else {
			v.Invalid = append(v.Invalid, scope)
		}
	}

	return v
}

// ReadOnlyBundle returns every read-action scope in the registry.
// By construction it can never contain a write-action scope.
func ReadOnlyBundle() []string {
	bundle := make([]string, 0, len(registry)/2)
	for _, scope := range registry {
		if action, _, ok := SplitScope(scope); ok && action == ActionRead {
			bundle = append(bundle, scope)
		}
	}
	return bundle
}

// FullAccessBundle returns every known scope.
func FullAccessBundle() []string {
	return KnownScopes()
}

// ResourceBundle returns the read and write scopes for one resource.
// Returns ErrUnknownResource for resources outside the registry.
func ResourceBundle(resource string) ([]string, error) {
	if !slices.Contains(scopeResources, resource) {
		return nil, ErrUnknownResource
	}

	bundle := make([]string, 0, len(scopeActions))
	for _, action := range scopeActions {
		bundle = append(bundle, Scope(action, resource))
	}
	return bundle, nil
}
