package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"LoadSentinel/internal/collector"
	"LoadSentinel/internal/model"
	"LoadSentinel/internal/notifier"
	"LoadSentinel/internal/risk"
)

func reportCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Evaluate the record store once and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg, os.Stderr)

			src, closeSrc, err := newSource(cfg, log)
			if err != nil {
				return fmt.Errorf("init source: %w", err)
			}
			defer closeSrc()

			now := time.Now()
			ds, err := collector.NewCollector(src, &cfg.Thresholds, log).Collect(cmd.Context(), now)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), risk.BuildReport(ds, now), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func writeReport(w io.Writer, rep *model.RiskReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	text := notifier.FormatRiskReport(rep)
	if alerts := notifier.FormatAlerts(rep.Alerts); alerts != "" {
		text += "\n" + alerts
	}
	text += "\n" + notifier.FormatInjurySummary(rep.InjuriesByRegion, rep.InjuriesByType)
	text += "\n" + notifier.FormatLoadSpikes(rep.Spikes, rep.Thresholds.LoadSpikePercent)
	_, err := fmt.Fprint(w, text)
	return err
}
