package risk

import (
	"time"

	"LoadSentinel/internal/calculator"
	"LoadSentinel/internal/model"
)

// ComputeLoadSpikes flags athletes whose 7-day load rose by more than
// LoadSpikePercent compared with the preceding 7 days. Athletes with no load
// in the preceding week have no baseline and are skipped.
func ComputeLoadSpikes(athletes []model.Athlete, loads []model.DailyLoad, t model.ThresholdSettings, now time.Time) []model.LoadSpike {
	byAthlete := calculator.GroupByAthlete(loads)
	currentWindow := calculator.TrailingWindow(now, calculator.AcuteDays)
	previousWindow := calculator.TrailingWindow(now.AddDate(0, 0, -calculator.AcuteDays), calculator.AcuteDays)

	spikes := make([]model.LoadSpike, 0)
	for _, a := range athletes {
		athleteLoads := byAthlete[a.ID]
		previous := calculator.SumLoad(athleteLoads, previousWindow)
		if previous <= 0 {
			continue
		}
		current := calculator.SumLoad(athleteLoads, currentWindow)
		change := (current - previous) / previous * 100
		if change <= t.LoadSpikePercent {
			continue
		}
		spikes = append(spikes, model.LoadSpike{
			AthleteID:     a.ID,
			AthleteName:   a.Name,
			PreviousLoad:  previous,
			CurrentLoad:   current,
			ChangePercent: change,
		})
	}
	return spikes
}
