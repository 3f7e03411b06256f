package apikey

import "errors"

var (
	// ErrGrantNotFound is returned when no grant exists for a key identity.
	ErrGrantNotFound = errors.New("api key grant not found")

	// ErrGrantRevoked is returned when the grant has been deactivated.
	ErrGrantRevoked = errors.New("api key grant revoked")

	// ErrGrantExpired is returned when the grant has passed its expiry.
	ErrGrantExpired = errors.New("api key grant expired")

	// ErrInsufficientScope is returned when a grant lacks a required scope.
	ErrInsufficientScope = errors.New("insufficient api key scope")

	// ErrUnknownResource is returned when building a bundle for a resource
	// outside the scope registry.
	ErrUnknownResource = errors.New("unknown api resource")
)
