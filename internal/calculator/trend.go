package calculator

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"LoadSentinel/internal/model"
)

// DefaultTrendDays is used when TrendOptions.Days is not positive.
const DefaultTrendDays = 30

// TrendOptions controls the trailing window of the trend builders.
type TrendOptions struct {
	Days int
}

func (o TrendOptions) window(now time.Time) Window {
	days := o.Days
	if days <= 0 {
		days = DefaultTrendDays
	}
	return TrailingWindow(now, days)
}

// ComputeLoadTrends averages TrainingLoad and RPE per date across all athletes
// for the trailing window, sorted ascending by date. Means keep full precision.
func ComputeLoadTrends(loads []model.DailyLoad, opts TrendOptions, now time.Time) []model.LoadTrend {
	w := opts.window(now)

	type bucket struct {
		loads []float64
		rpes  []float64
	}
	buckets := make(map[string]*bucket)
	var dates []string
	for _, l := range loads {
		if !w.Contains(l.Date) {
			continue
		}
		d := DayKey(l.Date)
		b, ok := buckets[d]
		if !ok {
			b = &bucket{}
			buckets[d] = b
			dates = append(dates, d)
		}
		b.loads = append(b.loads, l.TrainingLoad)
		b.rpes = append(b.rpes, l.RPE)
	}
	sort.Strings(dates)

	trends := make([]model.LoadTrend, 0, len(dates))
	for _, d := range dates {
		b := buckets[d]
		trends = append(trends, model.LoadTrend{
			Date:         d,
			TrainingLoad: stat.Mean(b.loads, nil),
			RPE:          stat.Mean(b.rpes, nil),
		})
	}
	return trends
}

// ComputeAthleteLoadTrends returns one point per record in the trailing window,
// sorted ascending by date. Sessions on the same date keep their input order.
func ComputeAthleteLoadTrends(loads []model.DailyLoad, opts TrendOptions, now time.Time) []model.LoadTrend {
	w := opts.window(now)
	trends := make([]model.LoadTrend, 0, len(loads))
	for _, l := range loads {
		if !w.Contains(l.Date) {
			continue
		}
		trends = append(trends, model.LoadTrend{
			Date:         DayKey(l.Date),
			TrainingLoad: l.TrainingLoad,
			RPE:          l.RPE,
		})
	}
	sort.SliceStable(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })
	return trends
}
