package gate

import (
	"errors"
	"fmt"
)

// Section is one navigable area of the application.
type Section struct {
	ID                   string `json:"id"`
	Label                string `json:"label"`
	RequiresSubscription bool   `json:"requires_subscription"`
}

// Section IDs for the default navigation.
const (
	SectionDashboard    = "dashboard"
	SectionPets         = "pets"
	SectionAppointments = "appointments"
	SectionInventory    = "inventory"
	SectionReports      = "reports"
	SectionSubscription = "subscription"
)

// DefaultSectionID is where an entitled tenant lands when the requested
// section is unknown.
const DefaultSectionID = SectionDashboard

// DefaultSections returns the standard navigation. Exactly one section,
// subscription management, is reachable without an active subscription so
// a de-entitled tenant always retains a path to re-subscribe.
func DefaultSections() []Section {
	return []Section{
		{ID: SectionDashboard, Label: "Dashboard", RequiresSubscription: true},
		{ID: SectionPets, Label: "Pets", RequiresSubscription: true},
		{ID: SectionAppointments, Label: "Appointments", RequiresSubscription: true},
		{ID: SectionInventory, Label: "Inventory", RequiresSubscription: true},
		{ID: SectionReports, Label: "Reports", RequiresSubscription: true},
		{ID: SectionSubscription, Label: "Subscription", RequiresSubscription: false},
	}
}

// ErrInvalidSectionList is returned when a section list violates the
// exactly-one-unprotected invariant.
var ErrInvalidSectionList = errors.New("invalid section list")

// ValidateSections enforces the hard invariant that exactly one section
// does not require a subscription. Zero unprotected sections would strand
// a de-entitled tenant; more than one widens the unauthenticated surface.
func ValidateSections(sections []Section) error {
	open := 0
	for _, s := range sections {
		if !s.RequiresSubscription {
			open++
		}
	}

	if open != 1 {
		return errors.Join(ErrInvalidSectionList,
			fmt.Errorf("expected exactly 1 section without subscription requirement, found %d", open))
	}
	return nil
}

// SelectSection decides the initial section for a page load.
//
// A non-entitled tenant is always forced to the unprotected section no
// matter what was requested. An entitled tenant gets the requested
// section when it exists, otherwise the fixed default.
func SelectSection(sections []Section, requestedID string, entitled bool) string {
	if !entitled {
		for _, s := range sections {
			if !s.RequiresSubscription {
				return s.ID
			}
		}
		// Unreachable for lists passing ValidateSections.
		return DefaultSectionID
	}

	for _, s := range sections {
		if s.ID == requestedID {
			return s.ID
		}
	}

	return DefaultSectionID
}
