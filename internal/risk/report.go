package risk

import (
	"time"

	"LoadSentinel/internal/calculator"
	"LoadSentinel/internal/model"
)

// BuildReport runs every builder over ds with the same reference time.
func BuildReport(ds *model.Dataset, now time.Time) *model.RiskReport {
	t := ds.Thresholds
	indicators := ComputeAthleteRiskIndicators(ds.Athletes, ds.Loads, ds.Injuries, t, now)
	return &model.RiskReport{
		GeneratedAt:      now,
		Thresholds:       t,
		Indicators:       indicators,
		Alerts:           ComputeRiskAlerts(indicators, t, now),
		Spikes:           ComputeLoadSpikes(ds.Athletes, ds.Loads, t, now),
		InjuriesByRegion: calculator.ComputeInjurySummaryByBodyRegion(ds.Injuries),
		InjuriesByType:   calculator.ComputeInjurySummaryByType(ds.Injuries),
		LoadTrend:        calculator.ComputeLoadTrends(ds.Loads, calculator.TrendOptions{Days: t.DefaultDays}, now),
	}
}
