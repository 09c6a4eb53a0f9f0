package seed

import (
	"log/slog"
	"time"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
	"github.com/cnjf-dev/volunteer-roster/internal/repository"
	"github.com/cnjf-dev/volunteer-roster/internal/utils"
)

var demoTeams = []domain.Team{
	{Name: "Accueil", Color: "#f59e0b"},
	{Name: "Bar", Color: "#10b981"},
	{Name: "Technique", Color: "#3b82f6"},
	{Name: "Logistique", Color: "#8b5cf6"},
}

// slotSpec describes one demo shift relative to the event's first day.
type slotSpec struct {
	title       string
	dayOffset   int
	startHour   int
	endHour     int
	team        string // empty = no owning team
	capacity    int32
	priority    int32
	skills      []string
	description string
}

var demoSlots = []slotSpec{
	// setup day
	{title: "Montage jour 1 - matin", dayOffset: -1, startHour: 9, endHour: 13, team: "Logistique", capacity: 6, priority: 2},
	{title: "Montage jour 1 - après-midi", dayOffset: -1, startHour: 14, endHour: 18, team: "Logistique", capacity: 6, priority: 2},
	{title: "Montage scène", dayOffset: -1, startHour: 14, endHour: 18, team: "Technique", capacity: 3, priority: 3, skills: []string{"son", "lumière"}},

	// event days
	{title: "Accueil - vendredi matin", dayOffset: 0, startHour: 8, endHour: 12, team: "Accueil", capacity: 4},
	{title: "Accueil - vendredi après-midi", dayOffset: 0, startHour: 12, endHour: 17, team: "Accueil", capacity: 3},
	{title: "Bar - vendredi soir", dayOffset: 0, startHour: 18, endHour: 23, team: "Bar", capacity: 4, priority: 1},
	{title: "Régie gala", dayOffset: 1, startHour: 19, endHour: 23, team: "Technique", capacity: 2, priority: 3, skills: []string{"son"}},
	{title: "Accueil - samedi matin", dayOffset: 1, startHour: 8, endHour: 12, team: "Accueil", capacity: 4},
	{title: "Bar - samedi soir", dayOffset: 1, startHour: 18, endHour: 23, team: "Bar", capacity: 5, priority: 1},
	{title: "Accueil - dimanche matin", dayOffset: 2, startHour: 8, endHour: 12, team: "Accueil", capacity: 3},
	{title: "Bar - dimanche après-midi", dayOffset: 2, startHour: 12, endHour: 17, team: "Bar", capacity: 3},

	// teardown
	{title: "Démontage - dimanche soir", dayOffset: 2, startHour: 17, endHour: 21, team: "Logistique", capacity: 8, priority: 2},
	{title: "Démontage jour 2", dayOffset: 3, startHour: 9, endHour: 13, team: "Logistique", capacity: 5, priority: 1},
}

// SeedDemoEvent fills an event with demo teams, a realistic slot grid around
// a weekend convention, and randomized accepted applications.
func SeedDemoEvent(r *repository.Repository, eventID int64, volunteerCount int) error {
	// first event day: a friday about one month out
	firstDay := time.Now().AddDate(0, 1, 0).UTC().Truncate(24 * time.Hour)
	for firstDay.Weekday() != time.Friday {
		firstDay = firstDay.AddDate(0, 0, 1)
	}

	teamsByName := make(map[string]*domain.Team, len(demoTeams))
	teams := make([]*domain.Team, 0, len(demoTeams))
	for _, spec := range demoTeams {
		team := &domain.Team{EventID: eventID, Name: spec.Name, Color: spec.Color}
		if err := r.CreateTeam(team); err != nil {
			return err
		}
		teamsByName[team.Name] = team
		teams = append(teams, team)
	}
	slog.Info("seeded teams", "count", len(teams))

	for _, spec := range demoSlots {
		day := firstDay.AddDate(0, 0, spec.dayOffset)
		slot := &domain.TimeSlot{
			EventID:        eventID,
			Title:          spec.title,
			Description:    spec.description,
			StartTime:      day.Add(time.Duration(spec.startHour) * time.Hour),
			EndTime:        day.Add(time.Duration(spec.endHour) * time.Hour),
			MaxVolunteers:  spec.capacity,
			Priority:       spec.priority,
			RequiredSkills: spec.skills,
		}
		if team, ok := teamsByName[spec.team]; ok {
			slot.TeamID = &team.ID
		}
		if err := r.CreateTimeSlot(slot); err != nil {
			return err
		}
	}
	slog.Info("seeded time slots", "count", len(demoSlots))

	created := 0
	for i := 1; i <= volunteerCount; i++ {
		app := utils.GenerateRandomApplication(eventID, int64(i), teams)
		if err := r.CreateApplication(app); err != nil {
			slog.Error("could not insert application", "error", err)
			continue
		}
		created++
	}
	slog.Info("seeded applications", "count", created)

	return nil
}
