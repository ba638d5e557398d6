package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"LoadSentinel/internal/alertstate"
	"LoadSentinel/internal/calculator"
	"LoadSentinel/internal/collector"
	"LoadSentinel/internal/model"
	"LoadSentinel/internal/notifier"
	"LoadSentinel/internal/recorder"
	"LoadSentinel/internal/risk"
)

// alertRetention is how long delivered-alert markers are kept.
const alertRetention = 30

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Alerts    *alertstate.Manager
	Notifier  notifier.Sender // nil disables delivery
	Recorder  recorder.Recorder
	Ctx       context.Context
	Now       func() time.Time
	log       zerolog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, am *alertstate.Manager, n notifier.Sender, rec recorder.Recorder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Alerts:    am,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
		Now:       time.Now,
		log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the daily evaluation and the weekly summary.
func (s *Scheduler) RegisterAll(dailyCron, weeklyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, func() { s.dailyTask("DAILY") }); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyTask); err != nil {
		return fmt.Errorf("register weekly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running tasks.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunDailyNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask("MANUAL")
}

// evaluate collects a dataset and builds a report with a single reference time.
func (s *Scheduler) evaluate() (*model.RiskReport, error) {
	now := s.Now()
	ds, err := s.Collector.Collect(s.Ctx, now)
	if err != nil {
		return nil, err
	}
	return risk.BuildReport(ds, now), nil
}

func (s *Scheduler) dailyTask(trigger string) {
	s.log.Info().Str("trigger", trigger).Msg("running daily evaluation")
	rep, err := s.evaluate()
	if err != nil {
		s.log.Error().Err(err).Msg("daily collect")
		s.trySend(fmt.Sprintf("❌ Daily evaluation failed: %v", err))
		return
	}

	runID := recorder.NewRunID()
	if err := s.Recorder.RecordEvaluation(&recorder.EvaluationSnapshot{
		RunID:     runID,
		Trigger:   trigger,
		Timestamp: rep.GeneratedAt,
		Report:    rep,
	}); err != nil {
		s.log.Error().Err(err).Msg("record evaluation")
	}

	s.trySend(notifier.FormatRiskReport(rep))

	pending := s.Alerts.Pending(rep.Alerts)
	delivered := false
	if len(pending) > 0 {
		delivered = s.trySend(notifier.FormatAlerts(pending))
		if delivered {
			s.Alerts.MarkSent(pending, rep.GeneratedAt)
		}
	}
	if err := s.Recorder.RecordAlerts(runID, pending, delivered); err != nil {
		s.log.Error().Err(err).Msg("record alerts")
	}
	if err := s.Recorder.RecordAlerts(runID, without(rep.Alerts, pending), false); err != nil {
		s.log.Error().Err(err).Msg("record suppressed alerts")
	}

	cutoff := calculator.Day(rep.GeneratedAt.AddDate(0, 0, -alertRetention))
	s.Alerts.Prune(cutoff, rep.GeneratedAt)

	s.log.Info().
		Str("run_id", runID).
		Int("athletes", len(rep.Indicators)).
		Int("alerts", len(rep.Alerts)).
		Int("pending", len(pending)).
		Msg("daily evaluation finished")
}

func (s *Scheduler) weeklyTask() {
	s.log.Info().Msg("running weekly summary")
	rep, err := s.evaluate()
	if err != nil {
		s.log.Error().Err(err).Msg("weekly collect")
		return
	}
	msg := notifier.FormatInjurySummary(rep.InjuriesByRegion, rep.InjuriesByType) + "\n" +
		notifier.FormatLoadSpikes(rep.Spikes, rep.Thresholds.LoadSpikePercent)
	s.trySend(msg)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/risk", "/report":
		rep, err := s.evaluate()
		if err != nil {
			return fmt.Sprintf("❌ evaluation failed: %v", err)
		}
		return notifier.FormatRiskReport(rep)
	case "/alerts":
		rep, err := s.evaluate()
		if err != nil {
			return fmt.Sprintf("❌ evaluation failed: %v", err)
		}
		if len(rep.Alerts) == 0 {
			return "No active risk alerts ✅"
		}
		return notifier.FormatAlerts(rep.Alerts)
	case "/injuries":
		rep, err := s.evaluate()
		if err != nil {
			return fmt.Sprintf("❌ evaluation failed: %v", err)
		}
		return notifier.FormatInjurySummary(rep.InjuriesByRegion, rep.InjuriesByType)
	case "/spikes":
		rep, err := s.evaluate()
		if err != nil {
			return fmt.Sprintf("❌ evaluation failed: %v", err)
		}
		return notifier.FormatLoadSpikes(rep.Spikes, rep.Thresholds.LoadSpikePercent)
	default:
		return "Available commands:\n• /risk\n• /alerts\n• /injuries\n• /spikes"
	}
}

// without returns the alerts of all whose athlete has no alert in sent.
func without(all, sent []model.RiskAlert) []model.RiskAlert {
	skip := make(map[string]bool, len(sent))
	for _, a := range sent {
		skip[a.AthleteID] = true
	}
	out := make([]model.RiskAlert, 0, len(all))
	for _, a := range all {
		if !skip[a.AthleteID] {
			out = append(out, a)
		}
	}
	return out
}

func (s *Scheduler) trySend(text string) bool {
	if s.Notifier == nil || text == "" {
		return false
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("send notification")
		return false
	}
	return true
}
