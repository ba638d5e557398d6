package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"LoadSentinel/internal/calculator"
	"LoadSentinel/internal/model"
	"LoadSentinel/internal/risk"
)

// minLookbackDays covers the chronic window plus one week for trajectories and spikes.
const minLookbackDays = calculator.ChronicDays + calculator.AcuteDays

// MockSource returns fixed in-memory data for development and testing.
type MockSource struct {
	AthleteList []model.Athlete
	Loads       []model.DailyLoad
	InjuryList  []model.Injury
	Overrides   *model.ThresholdOverrides
	Err         error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Athletes(_ context.Context) ([]model.Athlete, error) {
	return m.AthleteList, m.Err
}

func (m *MockSource) DailyLoads(_ context.Context, since string) ([]model.DailyLoad, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []model.DailyLoad
	for _, l := range m.Loads {
		if calculator.DayKey(l.Date) >= since {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MockSource) Injuries(_ context.Context) ([]model.Injury, error) {
	return m.InjuryList, m.Err
}

func (m *MockSource) Thresholds(_ context.Context) (*model.ThresholdOverrides, error) {
	return m.Overrides, m.Err
}

// Collector fetches a complete dataset from a Source.
type Collector struct {
	Source    Source
	Overrides *model.ThresholdOverrides // from config; stored settings take precedence
	log       zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(src Source, overrides *model.ThresholdOverrides, log zerolog.Logger) *Collector {
	return &Collector{
		Source:    src,
		Overrides: overrides,
		log:       log.With().Str("component", "collector").Str("source", src.Name()).Logger(),
	}
}

// Collect fetches athletes, recent loads, injuries and thresholds.
func (c *Collector) Collect(ctx context.Context, now time.Time) (*model.Dataset, error) {
	return c.CollectSince(ctx, now, 0)
}

// CollectSince is Collect with loads going back at least minDays days.
func (c *Collector) CollectSince(ctx context.Context, now time.Time, minDays int) (*model.Dataset, error) {
	stored, err := c.Source.Thresholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch thresholds: %w", err)
	}
	merged := c.Overrides.Merge(stored)
	if err := merged.Validate(); err != nil {
		c.log.Warn().Err(err).Msg("stored thresholds fail validation, using them anyway")
	}
	thresholds := risk.ResolveThresholds(merged)

	athletes, err := c.Source.Athletes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch athletes: %w", err)
	}

	lookback := minLookbackDays
	if thresholds.DefaultDays > lookback {
		lookback = thresholds.DefaultDays
	}
	if minDays > lookback {
		lookback = minDays
	}
	since := calculator.TrailingWindow(now, lookback).Start
	loads, err := c.Source.DailyLoads(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("fetch daily loads: %w", err)
	}

	injuries, err := c.Source.Injuries(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch injuries: %w", err)
	}

	c.log.Debug().
		Int("athletes", len(athletes)).
		Int("loads", len(loads)).
		Int("injuries", len(injuries)).
		Str("since", since).
		Msg("dataset collected")

	return &model.Dataset{
		Athletes:   athletes,
		Loads:      loads,
		Injuries:   injuries,
		Thresholds: thresholds,
	}, nil
}
