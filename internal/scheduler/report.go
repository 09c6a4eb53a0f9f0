package scheduler

import (
	"fmt"
	"math"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

// buildResult aggregates the final assignment list into the run report:
// who is still unassigned, which slots stay open, the summary statistics and
// the human-readable warnings and recommendations.
func (e *Engine) buildResult(assignments []domain.Assignment) *domain.SchedulingResult {
	result := &domain.SchedulingResult{
		Assignments:          assignments,
		UnassignedVolunteers: []int64{},
		UnfilledSlots:        []int64{},
		Warnings:             []string{},
		Recommendations:      []string{},
	}

	for _, app := range e.volunteers {
		if len(e.assignedSlots[app.UserID]) == 0 {
			result.UnassignedVolunteers = append(result.UnassignedVolunteers, app.UserID)
		}
	}
	for _, slot := range e.slots {
		if e.remaining[slot.ID] > 0 {
			result.UnfilledSlots = append(result.UnfilledSlots, slot.ID)
		}
	}

	result.Stats = e.buildStats(assignments)

	if n := len(result.UnassignedVolunteers); n > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d volunteer(s) received no shift at all", n))
	}
	if n := len(result.UnfilledSlots); n > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d slot(s) still have open spots", n))
	}

	if result.Stats.SatisfactionRate < 0.7 {
		result.Recommendations = append(result.Recommendations, "overall match quality is low; consider relaxing strict availability or collecting more detailed preferences")
	}
	if result.Stats.AverageHoursPerVolunteer < e.constraints.MinHoursPerVolunteer {
		result.Recommendations = append(result.Recommendations, fmt.Sprintf("average assigned hours (%.1f) are below the %.1fh minimum per volunteer; there may be too many volunteers for the open slots", result.Stats.AverageHoursPerVolunteer, e.constraints.MinHoursPerVolunteer))
	}

	// name the teams whose shifts stay short-handed
	openByTeam := make(map[int64]int)
	for _, slot := range e.slots {
		if e.remaining[slot.ID] > 0 && slot.TeamID != nil {
			openByTeam[*slot.TeamID]++
		}
	}
	for _, team := range e.teams {
		if n := openByTeam[team.ID]; n > 0 {
			result.Recommendations = append(result.Recommendations, fmt.Sprintf("team %s still has %d slot(s) with open spots; consider recruiting for it specifically", team.Name, n))
		}
	}

	return result
}

func (e *Engine) buildStats(assignments []domain.Assignment) domain.SchedulingStats {
	stats := domain.SchedulingStats{
		TotalAssignments: len(assignments),
		BalanceScore:     1,
	}

	if len(assignments) > 0 {
		totalConfidence := 0
		for _, a := range assignments {
			totalConfidence += a.Confidence
		}
		stats.SatisfactionRate = float64(totalConfidence) / float64(len(assignments)) / 100
	}

	if len(e.volunteers) == 0 {
		return stats
	}

	mean := e.averageHours()
	stats.AverageHoursPerVolunteer = mean

	variance := 0.0
	for _, app := range e.volunteers {
		diff := e.hours[app.UserID] - mean
		variance += diff * diff
	}
	variance /= float64(len(e.volunteers))

	stats.BalanceScore = 1 - math.Sqrt(variance)/(mean+1)
	if stats.BalanceScore < 0 {
		stats.BalanceScore = 0
	}

	return stats
}
