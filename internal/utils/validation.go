package utils

import (
	"fmt"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

// ValidateRoster runs every invariant check on a finished roster. The engine
// is built to never produce a violating roster; this is the guard the commit
// path and the tests rely on.
func ValidateRoster(assignments []domain.Assignment, applications []*domain.VolunteerApplication, slots []*domain.TimeSlot, constraints domain.SchedulingConstraints) error {
	if err := ValidateRosterCapacity(assignments, slots); err != nil {
		return err
	}
	if err := ValidateNoDoubleBooking(assignments, slots); err != nil {
		return err
	}
	if err := ValidateWorkloadCeiling(assignments, slots, constraints); err != nil {
		return err
	}
	if constraints.RespectStrictAvailability {
		if err := ValidateStrictAvailability(assignments, applications, slots); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRosterCapacity checks that no slot holds more volunteers than its
// capacity allows, counting pre-existing assignments.
func ValidateRosterCapacity(assignments []domain.Assignment, slots []*domain.TimeSlot) error {
	counts := make(map[int64]int32)
	for _, a := range assignments {
		counts[a.SlotID]++
	}

	for _, slot := range slots {
		if counts[slot.ID]+slot.AssignedVolunteers > slot.MaxVolunteers {
			return fmt.Errorf("slot %d (%s) holds %d volunteers but allows %d", slot.ID, slot.Title, counts[slot.ID]+slot.AssignedVolunteers, slot.MaxVolunteers)
		}
	}
	return nil
}

// ValidateNoDoubleBooking checks that no volunteer has two assigned slots
// overlapping in time.
func ValidateNoDoubleBooking(assignments []domain.Assignment, slots []*domain.TimeSlot) error {
	slotsByID := make(map[int64]*domain.TimeSlot, len(slots))
	for _, slot := range slots {
		slotsByID[slot.ID] = slot
	}

	byVolunteer := make(map[int64][]*domain.TimeSlot)
	for _, a := range assignments {
		slot, ok := slotsByID[a.SlotID]
		if !ok {
			return fmt.Errorf("assignment references unknown slot %d", a.SlotID)
		}
		byVolunteer[a.VolunteerID] = append(byVolunteer[a.VolunteerID], slot)
	}

	for volunteerID, assigned := range byVolunteer {
		for i := 0; i < len(assigned); i++ {
			for j := i + 1; j < len(assigned); j++ {
				a, b := assigned[i], assigned[j]
				if a.StartTime.Before(b.EndTime) && a.EndTime.After(b.StartTime) {
					return fmt.Errorf("volunteer %d is double-booked on slots %d and %d", volunteerID, a.ID, b.ID)
				}
			}
		}
	}
	return nil
}

// ValidateWorkloadCeiling checks total assigned hours per volunteer against
// the constraint ceiling, overtime allowance included.
func ValidateWorkloadCeiling(assignments []domain.Assignment, slots []*domain.TimeSlot, constraints domain.SchedulingConstraints) error {
	slotsByID := make(map[int64]*domain.TimeSlot, len(slots))
	for _, slot := range slots {
		slotsByID[slot.ID] = slot
	}

	limit := constraints.MaxHoursPerVolunteer
	if constraints.AllowOvertime {
		limit += constraints.MaxOvertimeHours
	}

	hours := make(map[int64]float64)
	for _, a := range assignments {
		if slot, ok := slotsByID[a.SlotID]; ok {
			hours[a.VolunteerID] += slot.DurationHours()
		}
	}

	for volunteerID, total := range hours {
		if total > limit {
			return fmt.Errorf("volunteer %d is assigned %.1fh, above the %.1fh ceiling", volunteerID, total, limit)
		}
	}
	return nil
}

// ValidateStrictAvailability checks that no assignment contradicts the
// volunteer's declared availability for the slot's phase or an explicit
// blackout.
func ValidateStrictAvailability(assignments []domain.Assignment, applications []*domain.VolunteerApplication, slots []*domain.TimeSlot) error {
	slotsByID := make(map[int64]*domain.TimeSlot, len(slots))
	for _, slot := range slots {
		slotsByID[slot.ID] = slot
	}

	availability := make(map[int64]domain.VolunteerAvailability, len(applications))
	for _, app := range applications {
		availability[app.UserID] = domain.ParseAvailability(app.Availability)
	}

	for _, a := range assignments {
		slot, ok := slotsByID[a.SlotID]
		if !ok {
			continue
		}
		av := availability[a.VolunteerID]

		for _, blocked := range av.UnavailableSlotIDs {
			if blocked == slot.ID {
				return fmt.Errorf("volunteer %d is assigned blacked-out slot %d", a.VolunteerID, slot.ID)
			}
		}
		if !av.AllowsPhase(domain.PhaseForTitle(slot.Title)) {
			return fmt.Errorf("volunteer %d is assigned slot %d (%s) outside their declared availability", a.VolunteerID, slot.ID, slot.Title)
		}
	}
	return nil
}
