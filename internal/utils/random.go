package utils

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

var firstNames = []string{
	"Camille", "Léa", "Hugo", "Chloé", "Lucas", "Manon", "Nathan", "Emma",
	"Louis", "Jade", "Gabriel", "Zoé", "Arthur", "Inès", "Jules", "Louise",
	"Adam", "Alice", "Raphaël", "Lina",
}
var lastNames = []string{
	"Martin", "Bernard", "Thomas", "Petit", "Robert", "Richard", "Durand",
	"Dubois", "Moreau", "Laurent", "Simon", "Michel", "Lefebvre", "Leroy",
	"Roux", "David", "Bertrand", "Morel", "Fournier", "Girard",
}

var experienceSnippets = []string{
	"Je jongle depuis cinq ans et j'ai déjà été bénévole sur plusieurs festivals.",
	"First time volunteering, very motivated!",
	"Juggling workshops at my local circus school, some festival experience.",
	"Bénévole à la convention de jonglerie l'an dernier, à l'aise au bar.",
	"I ran the sound desk at a small festival once.",
	"Aucune expérience particulière mais beaucoup d'énergie.",
	"Volunteer at conventions for years, happy to do montage and teardown.",
}

var timeBucketNames = []string{
	"early_morning", "morning", "lunch", "early_afternoon",
	"late_afternoon", "evening", "late_evening", "night",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateEmailFromName(fullName string) string {
	slug := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))
	return fmt.Sprintf("%s%d@example.org", slug, rand.Intn(100))
}

func GenerateRandomPhone() string {
	return fmt.Sprintf("+33 6 %02d %02d %02d %02d", rand.Intn(100), rand.Intn(100), rand.Intn(100), rand.Intn(100))
}

// GenerateRandomAvailability produces a serialized availability blob the way
// the frontend would: most volunteers are available for the event itself,
// fewer for setup and teardown, and some declare preferred times of day.
func GenerateRandomAvailability() json.RawMessage {
	av := domain.VolunteerAvailability{
		Setup:    rand.Intn(3) > 0,
		Event:    rand.Intn(10) > 0,
		Teardown: rand.Intn(2) > 0,
	}

	if rand.Intn(2) == 0 {
		av.PreferredTimes = GenerateRandomSubset(timeBucketNames)
	}

	raw, _ := json.Marshal(av)
	return raw
}

// GenerateRandomSubset returns a shuffled non-empty subset, Fisher-Yates.
func GenerateRandomSubset[T any](values []T) []T {
	out := append([]T{}, values...)

	for i := len(out) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	n := rand.Intn(len(out)) + 1
	return out[:n]
}

func GenerateRandomApplication(eventID, userID int64, teams []*domain.Team) *domain.VolunteerApplication {
	fullName := GenerateRandomFullName()

	app := &domain.VolunteerApplication{
		EventID:      eventID,
		UserID:       userID,
		FullName:     fullName,
		Email:        GenerateEmailFromName(fullName),
		Phone:        GenerateRandomPhone(),
		Availability: GenerateRandomAvailability(),
		Experience:   experienceSnippets[rand.Intn(len(experienceSnippets))],
		Motivation:   "Envie de donner un coup de main !",
		Status:       domain.ApplicationAccepted,
	}

	if len(teams) > 0 && rand.Intn(3) > 0 {
		teamIDs := make([]int64, 0, len(teams))
		for _, team := range teams {
			teamIDs = append(teamIDs, team.ID)
		}
		app.PreferredTeamIDs = GenerateRandomSubset(teamIDs)
	}

	return app
}
