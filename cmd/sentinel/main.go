// Command sentinel evaluates athlete training load and injury risk.
//
// Usage:
//
//	sentinel run
//	sentinel report --json
//	sentinel seed configs/fixture.example.yaml
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"LoadSentinel/internal/collector"
	"LoadSentinel/internal/config"
	"LoadSentinel/internal/recorder"
)

func main() {
	root := &cobra.Command{
		Use:           "sentinel",
		Short:         "Training load and injury risk monitor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(runCmd())
	root.AddCommand(reportCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Log.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// newSource picks the remote record store when configured, otherwise the local SQLite store.
func newSource(cfg *config.Config, log zerolog.Logger) (collector.Source, func() error, error) {
	if cfg.DataSource.BaseURL != "" {
		return collector.NewRemoteSource(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy), func() error { return nil }, nil
	}
	src, err := collector.NewSQLiteSource(cfg.Database.SQLitePath, log)
	if err != nil {
		return nil, nil, err
	}
	return src, src.Close, nil
}

func newRecorder(cfg *config.Config, log zerolog.Logger) recorder.Recorder {
	if cfg.Database.HistoryPath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.HistoryPath, log)
	if err != nil {
		log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		return recorder.NewNoopRecorder()
	}
	return sr
}
