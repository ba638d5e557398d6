package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"LoadSentinel/internal/collector"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Load a YAML fixture into the SQLite record store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg, os.Stderr)

			f, err := collector.LoadFixture(args[0])
			if err != nil {
				return err
			}
			src, err := collector.NewSQLiteSource(cfg.Database.SQLitePath, log)
			if err != nil {
				return fmt.Errorf("open record store: %w", err)
			}
			defer src.Close()

			if err := src.Seed(cmd.Context(), f); err != nil {
				return err
			}
			log.Info().
				Int("athletes", len(f.Athletes)).
				Int("loads", len(f.DailyLoads)).
				Int("injuries", len(f.Injuries)).
				Str("path", cfg.Database.SQLitePath).
				Msg("fixture seeded")
			return nil
		},
	}
}
