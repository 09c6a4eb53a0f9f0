package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

func TestBuildResultReportsGaps(t *testing.T) {
	assigned := newApp(1, "")
	leftOut := newApp(2, "")
	slots := []*domain.TimeSlot{
		newSlot(10, "Accueil", day1, 9, 13, 2),
		newSlot(11, "Bar", day2, 9, 13, 1),
	}

	e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{assigned, leftOut}, slots)

	var assignments []domain.Assignment
	assignments = e.commit(assignments, assigned, slots[0], 60)

	result := e.buildResult(assignments)

	require.Equal(t, []int64{2}, result.UnassignedVolunteers)
	require.ElementsMatch(t, []int64{10, 11}, result.UnfilledSlots)
	require.Len(t, result.Warnings, 2)
	require.Contains(t, result.Warnings[0], "no shift")
	require.Contains(t, result.Warnings[1], "open spots")
}

func TestBuildResultNamesShortHandedTeams(t *testing.T) {
	teamID := int64(3)
	app := newApp(1, "")
	slot := newSlot(10, "Bar", day1, 9, 13, 2)
	slot.TeamID = &teamID
	teams := []*domain.Team{{ID: teamID, Name: "Bar"}}

	e, err := New(domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot}, teams)
	require.NoError(t, err)

	var assignments []domain.Assignment
	assignments = e.commit(assignments, app, slot, 50)

	result := e.buildResult(assignments)

	require.Len(t, result.Recommendations, 1)
	require.Contains(t, result.Recommendations[0], "team Bar")
}

func TestBuildStats(t *testing.T) {
	a := newApp(1, "")
	b := newApp(2, "")
	slots := []*domain.TimeSlot{
		newSlot(10, "Accueil", day1, 9, 13, 1),
		newSlot(11, "Bar", day2, 9, 13, 1),
	}

	e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{a, b}, slots)

	var assignments []domain.Assignment
	assignments = e.commit(assignments, a, slots[0], 50) // confidence 80
	assignments = e.commit(assignments, b, slots[1], 50) // confidence 80

	stats := e.buildStats(assignments)

	require.Equal(t, 2, stats.TotalAssignments)
	require.InDelta(t, 4.0, stats.AverageHoursPerVolunteer, 0.001)
	require.InDelta(t, 0.8, stats.SatisfactionRate, 0.001)
	require.InDelta(t, 1.0, stats.BalanceScore, 0.001, "identical hours mean a perfectly even roster")
}

func TestBuildStatsUnevenHours(t *testing.T) {
	a := newApp(1, "")
	b := newApp(2, "")
	slots := []*domain.TimeSlot{
		newSlot(10, "Accueil", day1, 9, 17, 1), // 8h, all to one volunteer
	}

	e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{a, b}, slots)

	var assignments []domain.Assignment
	assignments = e.commit(assignments, a, slots[0], 50)

	stats := e.buildStats(assignments)

	// mean 4, stddev 4: 1 - 4/5
	require.InDelta(t, 0.2, stats.BalanceScore, 0.001)
}

func TestBuildStatsEmptyRun(t *testing.T) {
	e := newTestEngine(t, domain.DefaultConstraints(), nil, nil)

	stats := e.buildStats(nil)

	require.Zero(t, stats.TotalAssignments)
	require.Zero(t, stats.SatisfactionRate)
	require.InDelta(t, 1.0, stats.BalanceScore, 0.001)
}

func TestBuildResultRecommendations(t *testing.T) {
	a := newApp(1, "")
	slots := []*domain.TimeSlot{
		newSlot(10, "Accueil", day1, 9, 10, 1), // 1h, below the 2h minimum
	}

	e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{a}, slots)

	var assignments []domain.Assignment
	assignments = e.commit(assignments, a, slots[0], 0) // confidence 40

	result := e.buildResult(assignments)

	require.Len(t, result.Recommendations, 2)
	require.Contains(t, result.Recommendations[0], "match quality is low")
	require.Contains(t, result.Recommendations[1], "below the 2.0h minimum")
}
