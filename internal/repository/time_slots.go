package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

func (r *Repository) GetTimeSlotsByEvent(eventID int64) ([]*domain.TimeSlot, error) {
	query := `
		SELECT
			id,
			event_id,
			title,
			description,
			start_time,
			end_time,
			team_id,
			max_volunteers,
			assigned_volunteers,
			required_skills,
			priority,
			created_at,
			version
		FROM time_slots
		WHERE event_id = $1
		ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []*domain.TimeSlot{}
	for rows.Next() {
		var (
			slot           domain.TimeSlot
			teamID         sql.NullInt64
			requiredSkills []byte
		)

		dst := []any{
			&slot.ID,
			&slot.EventID,
			&slot.Title,
			&slot.Description,
			&slot.StartTime,
			&slot.EndTime,
			&teamID,
			&slot.MaxVolunteers,
			&slot.AssignedVolunteers,
			&requiredSkills,
			&slot.Priority,
			&slot.CreatedAt,
			&slot.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if teamID.Valid {
			slot.TeamID = &teamID.Int64
		}
		if len(requiredSkills) > 0 {
			if err := json.Unmarshal(requiredSkills, &slot.RequiredSkills); err != nil {
				return nil, err
			}
		}

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *Repository) CreateTimeSlot(slot *domain.TimeSlot) error {
	query := `
		INSERT INTO time_slots (
			event_id,
			title,
			description,
			start_time,
			end_time,
			team_id,
			max_volunteers,
			assigned_volunteers,
			required_skills,
			priority
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	requiredSkills, err := json.Marshal(slot.RequiredSkills)
	if err != nil {
		return err
	}

	var teamID any
	if slot.TeamID != nil {
		teamID = *slot.TeamID
	}

	params := []any{
		slot.EventID,
		slot.Title,
		slot.Description,
		slot.StartTime,
		slot.EndTime,
		teamID,
		slot.MaxVolunteers,
		slot.AssignedVolunteers,
		requiredSkills,
		slot.Priority,
	}
	dst := []any{&slot.ID, &slot.CreatedAt, &slot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}
