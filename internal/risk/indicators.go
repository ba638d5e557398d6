package risk

import (
	"time"

	"LoadSentinel/internal/calculator"
	"LoadSentinel/internal/model"
)

// trajectoryDelta is the ACWR change over one week below which the trend is stable.
const trajectoryDelta = 0.1

// ComputeAthleteRiskIndicators builds one indicator per athlete, in input order.
// Athletes without loads or injuries still get an indicator (ACWR 0, low).
func ComputeAthleteRiskIndicators(
	athletes []model.Athlete,
	loads []model.DailyLoad,
	injuries []model.Injury,
	t model.ThresholdSettings,
	now time.Time,
) []model.RiskIndicator {
	byAthlete := calculator.GroupByAthlete(loads)
	active := calculator.CountActiveInjuries(injuries)

	indicators := make([]model.RiskIndicator, 0, len(athletes))
	for _, a := range athletes {
		athleteLoads := byAthlete[a.ID]
		w := calculator.WindowsForAthleteLoads(athleteLoads, now)
		acwr := calculator.ACWR(w)
		indicators = append(indicators, model.RiskIndicator{
			AthleteID:      a.ID,
			AthleteName:    a.Name,
			AcuteLoad:      w.Acute,
			ChronicLoad:    w.Chronic,
			ACWR:           acwr,
			RiskLevel:      ComputeRiskLevel(acwr, t),
			ActiveInjuries: active[a.ID],
			Trajectory:     trajectory(athleteLoads, acwr, now),
		})
	}
	return indicators
}

// trajectory compares today's ACWR with the one computed a week earlier.
func trajectory(athleteLoads []model.DailyLoad, current float64, now time.Time) model.Trajectory {
	span := calculator.TrailingWindow(now, calculator.ChronicDays+calculator.AcuteDays)
	if calculator.SumLoad(athleteLoads, span) == 0 {
		return ""
	}
	previous := calculator.ACWR(calculator.WindowsForAthleteLoads(athleteLoads, now.AddDate(0, 0, -calculator.AcuteDays)))
	switch diff := current - previous; {
	case diff > trajectoryDelta:
		return model.TrajectoryRising
	case diff < -trajectoryDelta:
		return model.TrajectoryFalling
	default:
		return model.TrajectoryStable
	}
}
