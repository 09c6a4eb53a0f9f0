package scheduler

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

// Engine assigns volunteers to time slots for one event. It owns all mutable
// scheduling state for a single run: the caller's slot and application values
// are never written to, remaining capacity lives in an engine-local index.
//
// An Engine is good for exactly one Run call and must not be shared across
// concurrent runs.
type Engine struct {
	constraints domain.SchedulingConstraints
	volunteers  []*domain.VolunteerApplication
	slots       []*domain.TimeSlot
	teams       []*domain.Team

	slotsByID    map[int64]*domain.TimeSlot
	availability map[int64]domain.VolunteerAvailability

	// per-run mutable state
	remaining     map[int64]int32   // slot id -> open spots
	hours         map[int64]float64 // volunteer id -> total assigned hours
	assignedSlots map[int64][]int64 // volunteer id -> assigned slot ids, in order
}

// New builds an engine from the three input collections and an already merged
// constraints record. Constraints with negative hour limits are rejected here;
// after construction the engine never fails.
//
// Applications without a user reference are dropped during preparation.
func New(constraints domain.SchedulingConstraints, applications []*domain.VolunteerApplication, slots []*domain.TimeSlot, teams []*domain.Team) (*Engine, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(constraints); err != nil {
		return nil, fmt.Errorf("invalid scheduling constraints: %w", err)
	}

	e := &Engine{
		constraints:   constraints,
		volunteers:    make([]*domain.VolunteerApplication, 0, len(applications)),
		slots:         make([]*domain.TimeSlot, 0, len(slots)),
		teams:         teams,
		slotsByID:     make(map[int64]*domain.TimeSlot, len(slots)),
		availability:  make(map[int64]domain.VolunteerAvailability, len(applications)),
		remaining:     make(map[int64]int32, len(slots)),
		hours:         make(map[int64]float64, len(applications)),
		assignedSlots: make(map[int64][]int64, len(applications)),
	}

	for _, app := range applications {
		if app.UserID <= 0 {
			continue
		}
		e.volunteers = append(e.volunteers, app)
		e.availability[app.UserID] = domain.ParseAvailability(app.Availability)
	}

	for _, slot := range slots {
		e.slots = append(e.slots, slot)
		e.slotsByID[slot.ID] = slot

		open := slot.MaxVolunteers - slot.AssignedVolunteers
		if open < 0 {
			open = 0
		}
		e.remaining[slot.ID] = open
	}

	return e, nil
}

// Run executes the four scheduling passes and returns the full report. It is
// deterministic given identical inputs and never fails: impossible matches are
// excluded by score thresholds, and the worst case is an empty roster with
// every volunteer and slot reported open.
func (e *Engine) Run() *domain.SchedulingResult {
	slots := e.sortedSlots()

	assignments := e.fillPass(slots, highPriorityThreshold, nil)
	assignments = e.fillPass(slots, remainingFillThreshold, assignments)

	if e.constraints.BalanceTeams {
		assignments = e.rebalance(assignments)
	}

	return e.buildResult(assignments)
}

// sortedSlots orders slots so that scarce, urgent, soon shifts are filled
// first: explicit priority, then fewest open spots, then earliest start.
func (e *Engine) sortedSlots() []*domain.TimeSlot {
	sorted := make([]*domain.TimeSlot, len(e.slots))
	copy(sorted, e.slots)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if e.remaining[a.ID] != e.remaining[b.ID] {
			return e.remaining[a.ID] < e.remaining[b.ID]
		}
		return a.StartTime.Before(b.StartTime)
	})

	return sorted
}

// fillPass walks the sorted slots and commits every conflict-free candidate
// scoring above the threshold, best first, until the slot runs out of spots.
func (e *Engine) fillPass(slots []*domain.TimeSlot, threshold int, assignments []domain.Assignment) []domain.Assignment {
	for _, slot := range slots {
		if e.remaining[slot.ID] <= 0 {
			continue
		}

		for _, cand := range e.rankCandidates(slot, threshold) {
			if e.remaining[slot.ID] <= 0 {
				break
			}
			if e.hasTimeConflict(cand.app.UserID, slot) {
				continue
			}
			if e.exceedsHardCap(cand.app.UserID, slot) {
				continue
			}
			assignments = e.commit(assignments, cand.app, slot, cand.score)
		}
	}

	return assignments
}

// rankCandidates scores every volunteer not yet assigned to the slot and
// returns those above the threshold, best score first. Ties break on user id
// to keep runs deterministic.
func (e *Engine) rankCandidates(slot *domain.TimeSlot, threshold int) []candidate {
	candidates := make([]candidate, 0, len(e.volunteers))

	for _, app := range e.volunteers {
		if e.isAssignedTo(app.UserID, slot.ID) {
			continue
		}
		score := e.score(app, slot)
		if score <= threshold {
			continue
		}
		candidates = append(candidates, candidate{app: app, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].app.UserID < candidates[j].app.UserID
	})

	return candidates
}

// commit records one assignment and updates the run state.
func (e *Engine) commit(assignments []domain.Assignment, app *domain.VolunteerApplication, slot *domain.TimeSlot, score int) []domain.Assignment {
	e.remaining[slot.ID]--
	e.hours[app.UserID] += slot.DurationHours()
	e.assignedSlots[app.UserID] = append(e.assignedSlots[app.UserID], slot.ID)

	// copy the team id so the roster does not alias caller memory
	var teamID *int64
	if slot.TeamID != nil {
		v := *slot.TeamID
		teamID = &v
	}

	return append(assignments, domain.Assignment{
		EventID:     slot.EventID,
		VolunteerID: app.UserID,
		SlotID:      slot.ID,
		TeamID:      teamID,
		Score:       score,
		Confidence:  confidenceFromScore(score),
	})
}

func (e *Engine) isAssignedTo(volunteerID, slotID int64) bool {
	for _, id := range e.assignedSlots[volunteerID] {
		if id == slotID {
			return true
		}
	}
	return false
}

// exceedsHardCap guards the workload ceiling before any commit: without
// overtime a volunteer never goes past MaxHoursPerVolunteer, with overtime
// never past the overtime allowance on top of it.
func (e *Engine) exceedsHardCap(volunteerID int64, slot *domain.TimeSlot) bool {
	limit := e.constraints.MaxHoursPerVolunteer
	if e.constraints.AllowOvertime {
		limit += e.constraints.MaxOvertimeHours
	}
	return e.hours[volunteerID]+slot.DurationHours() > limit
}

// averageHours is the running mean across all prepared volunteers, including
// the ones without any assignment yet.
func (e *Engine) averageHours() float64 {
	if len(e.volunteers) == 0 {
		return 0
	}
	total := 0.0
	for _, app := range e.volunteers {
		total += e.hours[app.UserID]
	}
	return total / float64(len(e.volunteers))
}

// hoursOnDay sums the volunteer's assigned hours for one calendar day, keyed
// by the slot's start date.
func (e *Engine) hoursOnDay(volunteerID int64, day string) float64 {
	total := 0.0
	for _, slotID := range e.assignedSlots[volunteerID] {
		slot := e.slotsByID[slotID]
		if slot.StartTime.Format("2006-01-02") == day {
			total += slot.DurationHours()
		}
	}
	return total
}
