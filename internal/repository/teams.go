package repository

import (
	"context"
	"time"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

func (r *Repository) GetTeamsByEvent(eventID int64) ([]*domain.Team, error) {
	query := `
		SELECT
			id,
			event_id,
			name,
			color,
			created_at,
			version
		FROM teams
		WHERE event_id = $1
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []*domain.Team{}
	for rows.Next() {
		var team domain.Team
		dst := []any{
			&team.ID,
			&team.EventID,
			&team.Name,
			&team.Color,
			&team.CreatedAt,
			&team.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		teams = append(teams, &team)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *Repository) CreateTeam(team *domain.Team) error {
	query := `
		INSERT INTO teams (event_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	dst := []any{&team.ID, &team.CreatedAt, &team.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, team.EventID, team.Name, team.Color).Scan(dst...); err != nil {
		return err
	}

	return nil
}
