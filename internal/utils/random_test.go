package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

func TestGenerateRandomSubset(t *testing.T) {
	values := []string{"a", "b", "c", "d"}

	for i := 0; i < 20; i++ {
		subset := GenerateRandomSubset(values)
		require.NotEmpty(t, subset)
		require.LessOrEqual(t, len(subset), len(values))
		for _, v := range subset {
			require.Contains(t, values, v)
		}
	}

	require.Equal(t, []string{"a", "b", "c", "d"}, values, "input slice stays untouched")
}

func TestGenerateRandomApplication(t *testing.T) {
	teams := []*domain.Team{{ID: 1, Name: "Bar"}, {ID: 2, Name: "Accueil"}}

	for i := int64(1); i <= 20; i++ {
		app := GenerateRandomApplication(7, i, teams)

		require.Equal(t, int64(7), app.EventID)
		require.Equal(t, i, app.UserID)
		require.Equal(t, domain.ApplicationAccepted, app.Status)
		require.NotEmpty(t, app.FullName)
		require.Contains(t, app.Email, "@")
		require.NotEmpty(t, app.Experience)

		// blob must round-trip through the scheduler's parser
		require.NotEmpty(t, app.Availability)
		av := domain.ParseAvailability(app.Availability)
		for _, name := range av.PreferredTimes {
			require.NotEmpty(t, name)
		}
		for _, teamID := range app.PreferredTeamIDs {
			require.Contains(t, []int64{1, 2}, teamID)
		}
	}
}
