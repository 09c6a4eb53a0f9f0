package scheduler

import (
	"slices"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

// isAvailable checks the volunteer's declared availability against the slot:
// an explicit blackout on the slot id wins, otherwise the flag for the slot's
// phase (derived from its title) decides.
func (e *Engine) isAvailable(app *domain.VolunteerApplication, slot *domain.TimeSlot) bool {
	av := e.availability[app.UserID]

	if slices.Contains(av.UnavailableSlotIDs, slot.ID) {
		return false
	}

	return av.AllowsPhase(domain.PhaseForTitle(slot.Title))
}

// hasTimeConflict reports whether the candidate slot overlaps in wall-clock
// time with any slot already assigned to the volunteer in this run. Intervals
// are half-open, so back-to-back shifts do not conflict.
func (e *Engine) hasTimeConflict(volunteerID int64, slot *domain.TimeSlot) bool {
	for _, slotID := range e.assignedSlots[volunteerID] {
		other := e.slotsByID[slotID]
		if slot.StartTime.Before(other.EndTime) && slot.EndTime.After(other.StartTime) {
			return true
		}
	}
	return false
}
