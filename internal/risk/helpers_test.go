package risk

import (
	"time"

	"LoadSentinel/internal/calculator"
	"LoadSentinel/internal/model"
)

var refNow = time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return calculator.Day(refNow.AddDate(0, 0, -n))
}

func floatPtr(v float64) *float64 { return &v }

// steadyLoads spreads `perDay` over every day of the last `days` days.
func steadyLoads(athleteID string, days int, perDay float64) []model.DailyLoad {
	loads := make([]model.DailyLoad, 0, days)
	for i := 0; i < days; i++ {
		loads = append(loads, model.DailyLoad{AthleteID: athleteID, Date: daysAgo(i), TrainingLoad: perDay})
	}
	return loads
}
