package calculator

import (
	"time"

	"LoadSentinel/internal/model"
)

// SumLoad totals TrainingLoad over the records that fall inside w.
func SumLoad(loads []model.DailyLoad, w Window) float64 {
	sum := 0.0
	for _, l := range loads {
		if w.Contains(l.Date) {
			sum += l.TrainingLoad
		}
	}
	return sum
}

// AggregateLoadWindows computes the acute (7-day sum) and chronic (28-day sum / 4)
// loads for one athlete, with both windows ending on now's date.
func AggregateLoadWindows(loads []model.DailyLoad, athleteID string, now time.Time) model.LoadWindows {
	return windowsFor(FilterAthlete(loads, athleteID), now)
}

// WindowsForAthleteLoads is AggregateLoadWindows for loads already filtered to one athlete.
func WindowsForAthleteLoads(athleteLoads []model.DailyLoad, now time.Time) model.LoadWindows {
	return windowsFor(athleteLoads, now)
}

func windowsFor(loads []model.DailyLoad, now time.Time) model.LoadWindows {
	acute := SumLoad(loads, TrailingWindow(now, AcuteDays))
	chronic := SumLoad(loads, TrailingWindow(now, ChronicDays)) / (ChronicDays / AcuteDays)
	return model.LoadWindows{Acute: acute, Chronic: chronic}
}

// ACWR returns acute/chronic, or 0 when there is no chronic load.
func ACWR(w model.LoadWindows) float64 {
	if w.Chronic <= 0 {
		return 0
	}
	return w.Acute / w.Chronic
}

// FilterAthlete returns the loads belonging to athleteID, preserving order.
func FilterAthlete(loads []model.DailyLoad, athleteID string) []model.DailyLoad {
	var out []model.DailyLoad
	for _, l := range loads {
		if l.AthleteID == athleteID {
			out = append(out, l)
		}
	}
	return out
}

// GroupByAthlete indexes loads by athlete ID in a single pass.
func GroupByAthlete(loads []model.DailyLoad) map[string][]model.DailyLoad {
	out := make(map[string][]model.DailyLoad)
	for _, l := range loads {
		out[l.AthleteID] = append(out[l.AthleteID], l)
	}
	return out
}
