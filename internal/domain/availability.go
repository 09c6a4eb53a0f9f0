package domain

import (
	"encoding/json"
	"strings"
)

// SlotPhase tells which part of the event a slot belongs to. It is derived
// from keywords in the slot title, not stored anywhere.
type SlotPhase string

const (
	PhaseSetup    SlotPhase = "setup"
	PhaseEvent    SlotPhase = "event"
	PhaseTeardown SlotPhase = "teardown"
)

// PhaseForTitle matches case-insensitive keywords in a slot title. Teardown
// keywords are checked first because "démontage" contains "montage".
func PhaseForTitle(title string) SlotPhase {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "démontage") || strings.Contains(t, "demontage") || strings.Contains(t, "teardown") || strings.Contains(t, "tear down"):
		return PhaseTeardown
	case strings.Contains(t, "montage") || strings.Contains(t, "setup") || strings.Contains(t, "set up"):
		return PhaseSetup
	default:
		return PhaseEvent
	}
}

// VolunteerAvailability is the decoded form of the availability blob attached
// to an application.
type VolunteerAvailability struct {
	Setup              bool     `json:"setup"`
	Event              bool     `json:"event"`
	Teardown           bool     `json:"teardown"`
	UnavailableSlotIDs []int64  `json:"unavailableSlots"`
	PreferredTimes     []string `json:"preferredTimes"`
}

// DefaultAvailability is what a volunteer gets when their blob is missing or
// unreadable: available for everything, no blackouts, no preferences.
func DefaultAvailability() VolunteerAvailability {
	return VolunteerAvailability{Setup: true, Event: true, Teardown: true}
}

// ParseAvailability never fails. A missing or malformed blob degrades to the
// permissive default instead of failing the whole scheduling run.
func ParseAvailability(raw json.RawMessage) VolunteerAvailability {
	if len(raw) == 0 {
		return DefaultAvailability()
	}

	var av VolunteerAvailability
	if err := json.Unmarshal(raw, &av); err != nil {
		return DefaultAvailability()
	}

	return av
}

// AllowsPhase reports whether the volunteer declared themselves available for
// the given phase of the event.
func (av VolunteerAvailability) AllowsPhase(phase SlotPhase) bool {
	switch phase {
	case PhaseSetup:
		return av.Setup
	case PhaseTeardown:
		return av.Teardown
	default:
		return av.Event
	}
}
