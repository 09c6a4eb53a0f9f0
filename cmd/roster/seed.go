package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnjf-dev/volunteer-roster/internal/config"
	"github.com/cnjf-dev/volunteer-roster/internal/repository"
	"github.com/cnjf-dev/volunteer-roster/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var (
		eventID    int64
		volunteers int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo teams, slots and applications for an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			if volunteers <= 0 {
				return fmt.Errorf("volunteer count must be positive, got %d", volunteers)
			}

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
			return seed.SeedDemoEvent(repo, eventID, volunteers)
		},
	}

	cmd.Flags().Int64Var(&eventID, "event-id", 0, "event to seed")
	cmd.Flags().IntVar(&volunteers, "volunteers", 40, "number of demo applications to create")
	_ = cmd.MarkFlagRequired("event-id")

	return cmd
}
