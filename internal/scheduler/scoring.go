package scheduler

import (
	"math"
	"strings"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

var generalExperienceKeywords = []string{"bénévol", "benevol", "volunteer", "jongl", "juggl"}
var conventionExperienceKeywords = []string{"convention", "festival"}

// timeBuckets maps a preference name to a [start, end) hour range. The
// late_evening bucket wraps past midnight.
var timeBuckets = map[string][2]int{
	"early_morning":   {6, 9},
	"morning":         {9, 12},
	"lunch":           {12, 14},
	"early_afternoon": {14, 17},
	"late_afternoon":  {17, 20},
	"evening":         {20, 23},
	"late_evening":    {23, 2},
	"night":           {2, 6},
}

// score rates one (volunteer, slot) pairing against the current run state.
// It is additive and pure: calling it twice without a state change gives the
// same value. The result is floored at impossibleScore, which is also
// returned directly for pairings that must never happen.
func (e *Engine) score(app *domain.VolunteerApplication, slot *domain.TimeSlot) int {
	cons := e.constraints
	av := e.availability[app.UserID]
	score := 0

	// declared availability, including explicit blackout slots
	if !e.isAvailable(app, slot) {
		if cons.RespectStrictAvailability {
			return impossibleScore
		}
		score += unavailablePenalty
	} else {
		score += availableBonus
	}

	// team preference
	if slot.TeamID != nil {
		for _, teamID := range app.PreferredTeamIDs {
			if teamID == *slot.TeamID {
				score += teamPreferenceBonus
				break
			}
		}
	}

	// time-of-day preference, one bonus per matching declared bucket
	for _, name := range av.PreferredTimes {
		if bucketMatchesSlot(name, slot) {
			score += timePreferenceBonus
		}
	}

	if cons.PrioritizeExperience {
		score += experienceBonus(app, slot)
	}

	duration := slot.DurationHours()
	current := e.hours[app.UserID]

	// workload ceiling
	if current+duration > cons.MaxHoursPerVolunteer {
		switch {
		case !cons.AllowOvertime:
			score += overCapPenalty
		case current+duration > cons.MaxHoursPerVolunteer+cons.MaxOvertimeHours:
			score += overOvertimePenalty
		default:
			score += overtimePenalty
		}
	}

	// daily ceiling
	day := slot.StartTime.Format("2006-01-02")
	dayHours := e.hoursOnDay(app.UserID, day)
	if dayHours+duration > cons.MaxHoursPerDay {
		if !cons.AllowOvertime {
			return impossibleScore
		}
		score += overDailyPenalty
	}

	// nudge volunteers into at least one useful shift per day
	if dayHours == 0 && duration >= cons.MinHoursPerDay {
		score += firstShiftOfDayBonus
	}

	// equalization: pull up volunteers below the running average, push down
	// the ones above it
	avg := e.averageHours()
	if current < avg {
		score += int(math.Floor(1.5 * (avg - current)))
	} else if current > avg {
		score -= int(math.Floor(2 * (current - avg)))
	}

	if slot.Priority > 0 {
		score += slotPriorityWeight * int(slot.Priority)
	}

	if e.remaining[slot.ID] <= urgencySpotsLeft {
		score += urgencyBonus
	}

	if score < impossibleScore {
		score = impossibleScore
	}
	return score
}

// experienceBonus does plain case-insensitive substring matching on the
// free-text experience and motivation. Inherently fuzzy, accepted as such.
func experienceBonus(app *domain.VolunteerApplication, slot *domain.TimeSlot) int {
	text := strings.ToLower(app.Experience + " " + app.Motivation)
	bonus := 0

	for _, keyword := range generalExperienceKeywords {
		if strings.Contains(text, keyword) {
			bonus += generalExperienceBonus
			break
		}
	}
	for _, keyword := range conventionExperienceKeywords {
		if strings.Contains(text, keyword) {
			bonus += conventionExperienceBonus
			break
		}
	}
	for _, skill := range slot.RequiredSkills {
		if skill != "" && strings.Contains(text, strings.ToLower(skill)) {
			bonus += requiredSkillBonus
		}
	}

	return bonus
}

// bucketMatchesSlot reports whether the slot's wall-clock hours overlap the
// named preference bucket.
func bucketMatchesSlot(name string, slot *domain.TimeSlot) bool {
	bucket, ok := timeBuckets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}

	slotStart := slot.StartTime.Hour()
	slotEnd := slot.EndTime.Hour()
	if slotEnd == slotStart {
		slotEnd = slotStart + 1 // sub-hour slot, still occupies its wall-clock hour
	} else if slotEnd < slotStart {
		slotEnd += 24 // slot runs past midnight
	}

	bucketStart, bucketEnd := bucket[0], bucket[1]
	if bucketEnd <= bucketStart {
		bucketEnd += 24
	}

	return hourRangesOverlap(slotStart, slotEnd, bucketStart, bucketEnd)
}

// hourRangesOverlap checks two half-open hour ranges on a 24h circle by also
// trying the slot shifted a day in both directions.
func hourRangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	for _, shift := range []int{-24, 0, 24} {
		if aStart+shift < bEnd && aEnd+shift > bStart {
			return true
		}
	}
	return false
}

// confidenceFromScore maps a score to the 0-100 trust percentage shown next
// to each assignment. Display only, never part of the assignment decision.
func confidenceFromScore(score int) int {
	switch {
	case score >= 50:
		c := 80 + int(0.4*float64(score-50))
		if c > 100 {
			c = 100
		}
		return c
	case score >= 20:
		return 60 + int(0.6*float64(score-20))
	case score >= 0:
		return 40 + score
	default:
		c := 40 + int(0.3*float64(score))
		if c < 10 {
			c = 10
		}
		return c
	}
}
