package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cnjf-dev/volunteer-roster/internal/domain"
)

// ReplaceEventAssignments commits one scheduling run: it records the audit
// row, drops the event's previous roster and inserts the new one, all in a
// single transaction.
func (r *Repository) ReplaceEventAssignments(run *domain.SchedulingRun, assignments []domain.Assignment) error {
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
		INSERT INTO scheduling_runs (
			id,
			event_id,
			triggered_by,
			total_assignments,
			satisfaction_rate,
			balance_score
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	params := []any{
		run.ID,
		run.EventID,
		run.TriggeredBy,
		run.TotalAssignments,
		run.SatisfactionRate,
		run.BalanceScore,
	}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&run.CreatedAt); err != nil {
		return err
	}

	// replace the previous roster for this event
	query = `DELETE FROM assignments WHERE event_id = $1`
	if _, err := tx.ExecContext(ctx, query, run.EventID); err != nil {
		return err
	}

	for i := range assignments {
		query := `
			INSERT INTO assignments (
				event_id,
				volunteer_id,
				slot_id,
				team_id,
				score,
				confidence,
				run_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`

		a := &assignments[i]
		a.RunID = run.ID

		var teamID any
		if a.TeamID != nil {
			teamID = *a.TeamID
		}

		params := []any{
			a.EventID,
			a.VolunteerID,
			a.SlotID,
			teamID,
			a.Score,
			a.Confidence,
			a.RunID,
		}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&a.ID, &a.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) GetAssignmentsByEvent(eventID int64) ([]domain.Assignment, error) {
	query := `
		SELECT
			id,
			event_id,
			volunteer_id,
			slot_id,
			team_id,
			score,
			confidence,
			run_id,
			created_at
		FROM assignments
		WHERE event_id = $1
		ORDER BY slot_id, volunteer_id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []domain.Assignment{}
	for rows.Next() {
		var (
			a      domain.Assignment
			teamID sql.NullInt64
		)

		dst := []any{
			&a.ID,
			&a.EventID,
			&a.VolunteerID,
			&a.SlotID,
			&teamID,
			&a.Score,
			&a.Confidence,
			&a.RunID,
			&a.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if teamID.Valid {
			a.TeamID = &teamID.Int64
		}

		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
