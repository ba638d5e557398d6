package collector

import (
	"context"

	"LoadSentinel/internal/model"
)

// Source defines the interface for reading records from the backing store.
type Source interface {
	Athletes(ctx context.Context) ([]model.Athlete, error)
	// DailyLoads returns loads dated on or after since (YYYY-MM-DD).
	DailyLoads(ctx context.Context, since string) ([]model.DailyLoad, error)
	Injuries(ctx context.Context) ([]model.Injury, error)
	// Thresholds returns the stored threshold overrides, or nil if none are stored.
	Thresholds(ctx context.Context) (*model.ThresholdOverrides, error)
	Name() string
}
