package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

// GetAcceptedApplicationsByEvent loads the applications the engine schedules
// from: accepted only, with their ordered team preferences.
func (r *Repository) GetAcceptedApplicationsByEvent(eventID int64) ([]*domain.VolunteerApplication, error) {
	query := `
		SELECT
			va.id,
			va.event_id,
			va.user_id,
			va.full_name,
			va.email,
			va.phone,
			va.availability,
			va.experience,
			va.motivation,
			va.status,
			va.created_at,
			va.version,
			atp.team_id
		FROM volunteer_applications va
		LEFT JOIN application_team_preferences atp ON va.id = atp.application_id
		WHERE va.event_id = $1 AND va.status = $2
		ORDER BY va.id, atp.rank
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, eventID, domain.ApplicationAccepted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []*domain.VolunteerApplication{}
	byID := make(map[int64]*domain.VolunteerApplication)

	for rows.Next() {
		var (
			app          domain.VolunteerApplication
			availability []byte
			teamID       sql.NullInt64
		)

		dst := []any{
			&app.ID,
			&app.EventID,
			&app.UserID,
			&app.FullName,
			&app.Email,
			&app.Phone,
			&availability,
			&app.Experience,
			&app.Motivation,
			&app.Status,
			&app.CreatedAt,
			&app.Version,
			&teamID,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		existing, ok := byID[app.ID]
		if !ok {
			app.Availability = json.RawMessage(availability)
			existing = &app
			byID[app.ID] = existing
			applications = append(applications, existing)
		}

		if teamID.Valid {
			existing.PreferredTeamIDs = append(existing.PreferredTeamIDs, teamID.Int64)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// CreateApplication inserts the application and its team preferences in one
// transaction.
func (r *Repository) CreateApplication(app *domain.VolunteerApplication) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO volunteer_applications (
			event_id,
			user_id,
			full_name,
			email,
			phone,
			availability,
			experience,
			motivation,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, version
	`

	availability := []byte(app.Availability)
	if len(availability) == 0 {
		availability = []byte("{}")
	}

	params := []any{
		app.EventID,
		app.UserID,
		app.FullName,
		app.Email,
		app.Phone,
		availability,
		app.Experience,
		app.Motivation,
		app.Status,
	}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&app.ID, &app.CreatedAt, &app.Version); err != nil {
		return err
	}

	for rank, teamID := range app.PreferredTeamIDs {
		query := `
			INSERT INTO application_team_preferences (application_id, team_id, rank)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.ExecContext(ctx, query, app.ID, teamID, rank); err != nil {
			return err
		}
	}

	return tx.Commit()
}
