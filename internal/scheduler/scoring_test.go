package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

func TestScore(t *testing.T) {
	t.Run("available volunteer on a plain slot", func(t *testing.T) {
		app := newApp(1, "")
		slot := newSlot(10, "Accueil", day1, 10, 14, 5)

		e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		// availability bonus plus the first-shift-of-day nudge
		require.Equal(t, 25, e.score(app, slot))
	})

	t.Run("strict unavailability is impossible", func(t *testing.T) {
		app := newApp(1, `{"event":true}`)
		slot := newSlot(10, "Montage jour 1", day1, 9, 13, 5)

		e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		require.Equal(t, impossibleScore, e.score(app, slot))
	})

	t.Run("lenient unavailability is a penalty", func(t *testing.T) {
		app := newApp(1, `{"event":true}`)
		slot := newSlot(10, "Montage jour 1", day1, 9, 13, 5)

		cons := domain.DefaultConstraints()
		cons.RespectStrictAvailability = false
		e := newTestEngine(t, cons, []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		require.Equal(t, -45, e.score(app, slot))
	})

	t.Run("team preference", func(t *testing.T) {
		teamID := int64(3)
		app := newApp(1, "")
		app.PreferredTeamIDs = []int64{teamID}
		slot := newSlot(10, "Bar", day1, 10, 14, 5)
		slot.TeamID = &teamID

		e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		require.Equal(t, 40, e.score(app, slot))
	})

	t.Run("time preference", func(t *testing.T) {
		app := newApp(1, `{"setup":true,"event":true,"teardown":true,"preferredTimes":["morning"]}`)
		slot := newSlot(10, "Accueil", day1, 9, 12, 5)

		e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		require.Equal(t, 37, e.score(app, slot))
	})

	t.Run("urgency and slot priority", func(t *testing.T) {
		app := newApp(1, "")
		slot := newSlot(10, "Régie gala", day1, 10, 14, 2)
		slot.Priority = 3

		e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		// 20 available + 5 nudge + 9 priority + 10 urgency
		require.Equal(t, 44, e.score(app, slot))
	})

	t.Run("daily ceiling without overtime is impossible", func(t *testing.T) {
		app := newApp(1, "")
		slot := newSlot(10, "Accueil", day1, 8, 18, 5) // 10h, daily max is 8

		e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		require.Equal(t, impossibleScore, e.score(app, slot))
	})

	t.Run("workload ceiling penalty", func(t *testing.T) {
		app := newApp(1, "")
		slot := newSlot(10, "Accueil", day2, 10, 14, 5)

		e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})
		e.hours[1] = 11 // 4 more would pass the 12h ceiling

		// 20 available - 100 over cap + 5 nudge
		require.Equal(t, -75, e.score(app, slot))
	})

	t.Run("overtime penalty inside the allowance", func(t *testing.T) {
		app := newApp(1, "")
		slot := newSlot(10, "Accueil", day2, 10, 14, 5)

		cons := domain.DefaultConstraints()
		cons.AllowOvertime = true
		e := newTestEngine(t, cons, []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})
		e.hours[1] = 9 // 13h total stays within the 12+2h allowance

		// 20 available - 20 overtime + 5 nudge
		require.Equal(t, 5, e.score(app, slot))
	})

	t.Run("past the overtime allowance", func(t *testing.T) {
		app := newApp(1, "")
		slot := newSlot(10, "Accueil", day2, 10, 14, 5)

		cons := domain.DefaultConstraints()
		cons.AllowOvertime = true
		e := newTestEngine(t, cons, []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})
		e.hours[1] = 11 // 15h total, past even the overtime allowance

		// 20 available - 200 past allowance + 5 nudge
		require.Equal(t, -175, e.score(app, slot))
	})

	t.Run("daily ceiling with overtime is a penalty", func(t *testing.T) {
		app := newApp(1, "")
		slot := newSlot(10, "Accueil", day1, 8, 18, 5) // 10h against the 8h daily max

		cons := domain.DefaultConstraints()
		cons.AllowOvertime = true
		e := newTestEngine(t, cons, []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		// 20 available - 80 over daily + 5 nudge
		require.Equal(t, -55, e.score(app, slot))
	})

	t.Run("experience ignored when not prioritized", func(t *testing.T) {
		app := newApp(1, "")
		app.Experience = "bénévole en festival"
		slot := newSlot(10, "Accueil", day1, 10, 14, 5)

		cons := domain.DefaultConstraints()
		cons.PrioritizeExperience = false
		e := newTestEngine(t, cons, []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

		require.Equal(t, 25, e.score(app, slot))
	})
}

func TestScoreIsIdempotent(t *testing.T) {
	app := newApp(1, `{"setup":true,"event":true,"teardown":true,"preferredTimes":["evening"]}`)
	app.Experience = "bénévole en festival"
	slot := newSlot(10, "Bar - soir", day1, 18, 23, 2)

	e := newTestEngine(t, domain.DefaultConstraints(), []*domain.VolunteerApplication{app}, []*domain.TimeSlot{slot})

	first := e.score(app, slot)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, e.score(app, slot))
	}
}

func TestExperienceBonus(t *testing.T) {
	cases := []struct {
		name       string
		experience string
		motivation string
		skills     []string
		want       int
	}{
		{name: "no match", experience: "aucune", want: 0},
		{name: "general keyword", experience: "J'ai fait du jonglage", want: 5},
		{name: "general plus convention", experience: "Bénévole en festival", want: 8},
		{name: "keyword in motivation", motivation: "first time volunteer", want: 5},
		{name: "required skill", experience: "régisseur son", skills: []string{"son", "lumière"}, want: 8},
		{name: "everything", experience: "bénévole de convention, régie son et lumière", skills: []string{"son", "lumière"}, want: 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := &domain.VolunteerApplication{Experience: tc.experience, Motivation: tc.motivation}
			slot := &domain.TimeSlot{RequiredSkills: tc.skills}
			require.Equal(t, tc.want, experienceBonus(app, slot))
		})
	}
}

func TestBucketMatchesSlot(t *testing.T) {
	cases := []struct {
		name   string
		bucket string
		start  int
		end    int
		want   bool
	}{
		{name: "exact morning", bucket: "morning", start: 9, end: 12, want: true},
		{name: "partial overlap", bucket: "evening", start: 18, end: 23, want: true},
		{name: "no overlap", bucket: "evening", start: 8, end: 12, want: false},
		{name: "unknown bucket", bucket: "siesta", start: 12, end: 14, want: false},
		{name: "whitespace and case", bucket: " Morning ", start: 9, end: 12, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot := newSlot(1, "x", day1, tc.start, tc.end, 1)
			require.Equal(t, tc.want, bucketMatchesSlot(tc.bucket, slot))
		})
	}

	t.Run("slot past midnight", func(t *testing.T) {
		slot := newSlot(1, "Bar - nuit", day1, 23, 27, 1) // 23:00 to 03:00
		require.True(t, bucketMatchesSlot("late_evening", slot))
		require.True(t, bucketMatchesSlot("night", slot))
		require.False(t, bucketMatchesSlot("morning", slot))
	})

	t.Run("sub-hour slot", func(t *testing.T) {
		slot := &domain.TimeSlot{
			StartTime: day1.Add(9 * time.Hour),
			EndTime:   day1.Add(9*time.Hour + 30*time.Minute),
		}
		require.True(t, bucketMatchesSlot("morning", slot))
		require.False(t, bucketMatchesSlot("night", slot))
		require.False(t, bucketMatchesSlot("evening", slot))
	})
}

func TestConfidenceFromScore(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{score: 100, want: 100},
		{score: 200, want: 100},
		{score: 50, want: 80},
		{score: 75, want: 90},
		{score: 49, want: 77},
		{score: 20, want: 60},
		{score: 19, want: 59},
		{score: 10, want: 50},
		{score: 0, want: 40},
		{score: -10, want: 37},
		{score: -100, want: 10},
		{score: impossibleScore, want: 10},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, confidenceFromScore(tc.score), "score %d", tc.score)
	}
}
