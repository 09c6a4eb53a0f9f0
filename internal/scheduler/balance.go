package scheduler

import "github.com/cnjf-dev/volunteer-roster/internal/domain"

// rebalance redistributes hours after the fill passes: volunteers well above
// the average hand one shift to volunteers well below it, when a conflict-free
// positive-scoring transfer exists. At most one transfer is attempted per
// over-utilized volunteer and the first viable pair wins; this is a greedy
// heuristic, not an optimizer.
func (e *Engine) rebalance(assignments []domain.Assignment) []domain.Assignment {
	if len(e.volunteers) == 0 {
		return assignments
	}

	avg := e.averageHours()

	var under, over []*domain.VolunteerApplication
	for _, app := range e.volunteers {
		switch hours := e.hours[app.UserID]; {
		case hours < avg-balanceBandHours:
			under = append(under, app)
		case hours > avg+balanceBandHours:
			over = append(over, app)
		}
	}

	for _, giver := range over {
		for _, receiver := range under {
			if e.hours[giver.UserID]-e.hours[receiver.UserID] < minTransferGapHours {
				continue
			}
			if e.transferShift(assignments, giver, receiver) {
				break
			}
		}
	}

	return assignments
}

// transferShift moves the first transferable shift from giver to receiver:
// the receiver must be free of time conflicts, under the workload ceiling,
// and score strictly positive for the slot. Returns false when no shift
// qualifies.
func (e *Engine) transferShift(assignments []domain.Assignment, giver, receiver *domain.VolunteerApplication) bool {
	for _, slotID := range e.assignedSlots[giver.UserID] {
		slot := e.slotsByID[slotID]

		if e.isAssignedTo(receiver.UserID, slot.ID) {
			continue
		}
		if e.hasTimeConflict(receiver.UserID, slot) {
			continue
		}
		if e.exceedsHardCap(receiver.UserID, slot) {
			continue
		}
		score := e.score(receiver, slot)
		if score <= 0 {
			continue
		}

		for i := range assignments {
			if assignments[i].VolunteerID != giver.UserID || assignments[i].SlotID != slot.ID {
				continue
			}
			assignments[i].VolunteerID = receiver.UserID
			assignments[i].Score = score
			assignments[i].Confidence = confidenceFromScore(score)

			duration := slot.DurationHours()
			e.hours[giver.UserID] -= duration
			e.hours[receiver.UserID] += duration
			e.assignedSlots[giver.UserID] = removeSlotID(e.assignedSlots[giver.UserID], slot.ID)
			e.assignedSlots[receiver.UserID] = append(e.assignedSlots[receiver.UserID], slot.ID)
			return true
		}
	}

	return false
}

func removeSlotID(slotIDs []int64, slotID int64) []int64 {
	out := slotIDs[:0]
	for _, id := range slotIDs {
		if id != slotID {
			out = append(out, id)
		}
	}
	return out
}
