package risk

import (
	"fmt"
	"time"

	"LoadSentinel/internal/calculator"
	"LoadSentinel/internal/model"
)

// ComputeRiskAlerts emits at most one alert per indicator whose ACWR is above
// the moderate threshold. Alerts keep the order of the indicators.
func ComputeRiskAlerts(indicators []model.RiskIndicator, t model.ThresholdSettings, now time.Time) []model.RiskAlert {
	date := calculator.Day(now)
	alerts := make([]model.RiskAlert, 0)
	for _, ind := range indicators {
		var severity model.Severity
		var band string
		var limit float64
		switch {
		case ind.ACWR > t.ACWRHigh:
			severity, band, limit = model.SeverityDanger, "high", t.ACWRHigh
		case ind.ACWR > t.ACWRModerate:
			severity, band, limit = model.SeverityWarning, "moderate", t.ACWRModerate
		default:
			continue
		}
		alerts = append(alerts, model.RiskAlert{
			AthleteID:   ind.AthleteID,
			AthleteName: ind.AthleteName,
			Message: fmt.Sprintf("%s has an elevated ACWR of %.2f (above the %s threshold of %.2f)",
				label(ind.AthleteName, ind.AthleteID), ind.ACWR, band, limit),
			Severity: severity,
			Date:     date,
		})
	}
	return alerts
}

func label(name, id string) string {
	if name != "" {
		return name
	}
	return "Athlete " + id
}
