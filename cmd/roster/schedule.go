package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cnjf-dev/volunteer-roster/internal/config"
	"github.com/cnjf-dev/volunteer-roster/internal/domain"
	"github.com/cnjf-dev/volunteer-roster/internal/repository"
	"github.com/cnjf-dev/volunteer-roster/internal/scheduler"
	"github.com/cnjf-dev/volunteer-roster/internal/utils"
)

func newScheduleCmd() *cobra.Command {
	var (
		eventID         int64
		commit          bool
		constraintsPath string
		triggeredBy     string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the assignment engine for an event, as a preview or a committed roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			dbpool, err := openDatabase(cfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer dbpool.Close()

			repo := repository.NewRepository(cfg, dbpool)

			applications, err := repo.GetAcceptedApplicationsByEvent(eventID)
			if err != nil {
				return fmt.Errorf("load applications: %w", err)
			}
			slots, err := repo.GetTimeSlotsByEvent(eventID)
			if err != nil {
				return fmt.Errorf("load time slots: %w", err)
			}
			teams, err := repo.GetTeamsByEvent(eventID)
			if err != nil {
				return fmt.Errorf("load teams: %w", err)
			}

			constraints, err := loadConstraints(constraintsPath)
			if err != nil {
				return err
			}

			engine, err := scheduler.New(constraints, applications, slots, teams)
			if err != nil {
				return err
			}
			result := engine.Run()

			renderRoster(result, applications, slots, teams)

			if err := utils.ValidateRoster(result.Assignments, applications, slots, constraints); err != nil {
				// the engine should never produce this; refuse to persist it
				if commit {
					return fmt.Errorf("roster failed invariant check: %w", err)
				}
				slog.Warn("roster failed invariant check", "error", err)
			}

			if !commit {
				slog.Info("preview only, nothing persisted", "event_id", eventID)
				return nil
			}

			run := &domain.SchedulingRun{
				ID:               uuid.New(),
				EventID:          eventID,
				TriggeredBy:      triggeredBy,
				TotalAssignments: result.Stats.TotalAssignments,
				SatisfactionRate: result.Stats.SatisfactionRate,
				BalanceScore:     result.Stats.BalanceScore,
			}
			if err := repo.ReplaceEventAssignments(run, result.Assignments); err != nil {
				return fmt.Errorf("persist roster: %w", err)
			}

			slog.Info("roster committed", "event_id", eventID, "run_id", run.ID, "assignments", run.TotalAssignments)
			return nil
		},
	}

	cmd.Flags().Int64Var(&eventID, "event-id", 0, "event to schedule")
	cmd.Flags().BoolVar(&commit, "commit", false, "persist the roster instead of previewing it")
	cmd.Flags().StringVar(&constraintsPath, "constraints", "", "YAML file with constraint overrides")
	cmd.Flags().StringVar(&triggeredBy, "triggered-by", "cli", "who triggered this run, recorded for audit")
	_ = cmd.MarkFlagRequired("event-id")

	return cmd
}

// loadConstraints merges an optional YAML override file onto the defaults.
func loadConstraints(path string) (domain.SchedulingConstraints, error) {
	overrides := domain.ConstraintOverrides{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.SchedulingConstraints{}, fmt.Errorf("read constraints file: %w", err)
		}
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			return domain.SchedulingConstraints{}, fmt.Errorf("parse constraints file: %w", err)
		}
	}

	return domain.MergeConstraints(overrides), nil
}

func renderRoster(result *domain.SchedulingResult, applications []*domain.VolunteerApplication, slots []*domain.TimeSlot, teams []*domain.Team) {
	volunteerNames := make(map[int64]string, len(applications))
	for _, app := range applications {
		volunteerNames[app.UserID] = app.FullName
	}
	slotsByID := make(map[int64]*domain.TimeSlot, len(slots))
	for _, slot := range slots {
		slotsByID[slot.ID] = slot
	}
	teamNames := make(map[int64]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.Name
	}

	roster := table.NewWriter()
	roster.SetOutputMirror(os.Stdout)
	roster.AppendHeader(table.Row{"Slot", "Time", "Team", "Volunteer", "Score", "Confidence"})
	for _, a := range result.Assignments {
		slot := slotsByID[a.SlotID]
		teamName := ""
		if a.TeamID != nil {
			teamName = teamNames[*a.TeamID]
		}
		roster.AppendRow(table.Row{
			slot.Title,
			fmt.Sprintf("%s - %s", slot.StartTime.Format("Mon 15:04"), slot.EndTime.Format("15:04")),
			teamName,
			volunteerNames[a.VolunteerID],
			a.Score,
			fmt.Sprintf("%d%%", a.Confidence),
		})
	}
	roster.Render()

	summary := table.NewWriter()
	summary.SetOutputMirror(os.Stdout)
	summary.AppendRow(table.Row{"Assignments", result.Stats.TotalAssignments})
	summary.AppendRow(table.Row{"Avg hours / volunteer", fmt.Sprintf("%.1f", result.Stats.AverageHoursPerVolunteer)})
	summary.AppendRow(table.Row{"Satisfaction", fmt.Sprintf("%.0f%%", result.Stats.SatisfactionRate*100)})
	summary.AppendRow(table.Row{"Balance", fmt.Sprintf("%.2f", result.Stats.BalanceScore)})
	summary.AppendRow(table.Row{"Unassigned volunteers", len(result.UnassignedVolunteers)})
	summary.AppendRow(table.Row{"Unfilled slots", len(result.UnfilledSlots)})
	summary.Render()

	for _, warning := range result.Warnings {
		slog.Warn(warning)
	}
	for _, recommendation := range result.Recommendations {
		slog.Info(recommendation)
	}
}
