package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

func TestRebalanceTransfersShift(t *testing.T) {
	overworked := newApp(1, "")
	idle := newApp(2, "")
	slots := []*domain.TimeSlot{
		newSlot(10, "Accueil", day1, 9, 13, 1),    // 4h
		newSlot(11, "Bar", day2, 9, 13, 1),        // 4h
		newSlot(12, "Accueil", day3, 9, 11, 1),    // 2h
		newSlot(13, "Logistique", day4, 9, 11, 1), // 2h
	}

	e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{overworked, idle}, slots)

	var assignments []domain.Assignment
	assignments = e.commit(assignments, overworked, slots[0], 30)
	assignments = e.commit(assignments, overworked, slots[1], 30)
	assignments = e.commit(assignments, overworked, slots[2], 30)
	assignments = e.commit(assignments, idle, slots[3], 30)

	// 10h vs 2h around a 6h average: one shift moves over
	assignments = e.rebalance(assignments)

	require.Equal(t, int64(2), assignments[0].VolunteerID, "first transferable shift changes hands")
	require.Equal(t, 41, assignments[0].Score, "transferred assignment is rescored for the receiver")
	require.InDelta(t, 6.0, e.hours[1], 0.001)
	require.InDelta(t, 6.0, e.hours[2], 0.001)
}

func TestRebalanceSkipsBalancedRoster(t *testing.T) {
	a := newApp(1, "")
	b := newApp(2, "")
	slots := []*domain.TimeSlot{
		newSlot(10, "Accueil", day1, 9, 13, 1),
		newSlot(11, "Bar", day2, 9, 13, 1),
	}

	e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{a, b}, slots)

	var assignments []domain.Assignment
	assignments = e.commit(assignments, a, slots[0], 30)
	assignments = e.commit(assignments, b, slots[1], 30)
	before := append([]domain.Assignment{}, assignments...)

	assignments = e.rebalance(assignments)

	require.Equal(t, before, assignments)
	require.InDelta(t, 4.0, e.hours[1], 0.001)
	require.InDelta(t, 4.0, e.hours[2], 0.001)
}

func TestRebalanceSkipsConflictingShift(t *testing.T) {
	overworked := newApp(1, "")
	idle := newApp(2, "")
	slots := []*domain.TimeSlot{
		newSlot(10, "Accueil", day1, 9, 13, 1),     // overlaps the receiver's shift
		newSlot(11, "Bar", day2, 9, 13, 1),         // first transferable one
		newSlot(12, "Accueil", day3, 9, 11, 1),     // stays with the giver
		newSlot(13, "Logistique", day1, 10, 14, 1), // receiver's own shift
	}

	e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{overworked, idle}, slots)

	var assignments []domain.Assignment
	assignments = e.commit(assignments, overworked, slots[0], 30)
	assignments = e.commit(assignments, overworked, slots[1], 30)
	assignments = e.commit(assignments, overworked, slots[2], 30)
	assignments = e.commit(assignments, idle, slots[3], 30)

	assignments = e.rebalance(assignments)

	require.Equal(t, int64(1), assignments[0].VolunteerID, "conflicting shift stays put")
	require.Equal(t, int64(2), assignments[1].VolunteerID, "next conflict-free shift transfers instead")
}
