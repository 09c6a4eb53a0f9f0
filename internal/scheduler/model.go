package scheduler

import "github.com/cnjf-dev/volunteer-roster/internal/domain"

// candidate: one scored (volunteer, slot) pairing considered during a fill pass
type candidate struct {
	app   *domain.VolunteerApplication
	score int
}

// Score thresholds and bonuses. The exact values are tuning constants; what
// matters is their ordering and sign.
const (
	// impossibleScore marks a pairing that must never be committed.
	impossibleScore = -1000

	// highPriorityThreshold separates obviously right matches from
	// speculative ones; the first fill pass only accepts scores above it.
	highPriorityThreshold = 50

	// remainingFillThreshold is the much lower bar of the second fill pass.
	remainingFillThreshold = -50

	availableBonus     = 20
	unavailablePenalty = -50

	teamPreferenceBonus = 15
	timePreferenceBonus = 12

	generalExperienceBonus    = 5
	conventionExperienceBonus = 3
	requiredSkillBonus        = 8

	overCapPenalty      = -100
	overOvertimePenalty = -200
	overtimePenalty     = -20
	overDailyPenalty    = -80

	firstShiftOfDayBonus = 5
	slotPriorityWeight   = 3

	// urgencyBonus boosts slots with at most urgencySpotsLeft open spots.
	urgencyBonus     = 10
	urgencySpotsLeft = 2
)

// Balancing pass tuning: volunteers more than balanceBandHours away from the
// average are considered over/under utilized, and a transfer is only tried
// between a pair at least minTransferGapHours apart.
const (
	balanceBandHours    = 2.0
	minTransferGapHours = 3.0
)
