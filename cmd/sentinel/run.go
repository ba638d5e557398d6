package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"LoadSentinel/internal/alertstate"
	"LoadSentinel/internal/api"
	"LoadSentinel/internal/collector"
	"LoadSentinel/internal/notifier"
	"LoadSentinel/internal/scheduler"
)

func runCmd() *cobra.Command {
	var runOnStart bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scheduler, Telegram bot and HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg, os.Stdout)
			log.Info().Msg("LoadSentinel starting...")
			for _, w := range cfg.Warnings() {
				log.Warn().Msg(w)
			}

			src, closeSrc, err := newSource(cfg, log)
			if err != nil {
				return fmt.Errorf("init source: %w", err)
			}
			defer closeSrc()
			log.Info().Str("source", src.Name()).Msg("data source ready")

			col := collector.NewCollector(src, &cfg.Thresholds, log)

			am, err := alertstate.NewManager(cfg.Alerts.StateFile, log)
			if err != nil {
				return fmt.Errorf("init alert state: %w", err)
			}

			rec := newRecorder(cfg, log)
			defer rec.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var sender notifier.Sender
			var tn *notifier.TelegramNotifier
			if cfg.Telegram.Enabled {
				tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
				sender = tn
			}

			sched := scheduler.NewScheduler(ctx, col, am, sender, rec, log)
			if err := sched.RegisterAll(cfg.Schedule.DailyCron, cfg.Schedule.WeeklyCron); err != nil {
				return fmt.Errorf("register cron tasks: %w", err)
			}
			sched.Start()
			defer sched.Stop()

			if tn != nil {
				go tn.StartPolling(ctx, sched.HandleCommand)
				log.Info().Msg("Telegram polling started")
			}

			srv := api.NewServer(cfg.API.Addr, col, log)
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			if runOnStart || os.Getenv("RUN_ON_START") == "true" {
				log.Info().Msg("run-on-start enabled, executing daily task now")
				go sched.RunDailyNow()
			}

			log.Info().Msg("LoadSentinel is running. Press Ctrl+C to stop.")
			select {
			case <-ctx.Done():
				log.Info().Msg("shutdown signal received, stopping...")
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("http shutdown")
			}
			log.Info().Msg("LoadSentinel stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&runOnStart, "run-now", false, "Execute the daily evaluation immediately")
	return cmd
}
