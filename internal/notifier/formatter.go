package notifier

import (
	"fmt"
	"html"
	"strings"

	"LoadSentinel/internal/model"
)

var riskIcon = map[model.RiskLevel]string{
	model.RiskLow:      "🟢",
	model.RiskModerate: "🟠",
	model.RiskHigh:     "🔴",
}

var trajectoryArrow = map[model.Trajectory]string{
	model.TrajectoryRising:  "↑",
	model.TrajectoryStable:  "→",
	model.TrajectoryFalling: "↓",
}

func name(athleteName, athleteID string) string {
	if athleteName == "" {
		return html.EscapeString(athleteID)
	}
	return html.EscapeString(athleteName)
}

// FormatRiskReport formats the daily ACWR overview into a Telegram message.
func FormatRiskReport(rep *model.RiskReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Load & Risk Report</b> | %s\n\n", rep.GeneratedAt.Format(model.DateLayout)))
	b.WriteString(fmt.Sprintf("Thresholds: moderate &gt; %.2f | high &gt; %.2f\n\n",
		rep.Thresholds.ACWRModerate, rep.Thresholds.ACWRHigh))

	var high, moderate int
	for _, ind := range rep.Indicators {
		switch ind.RiskLevel {
		case model.RiskHigh:
			high++
		case model.RiskModerate:
			moderate++
		}
	}
	b.WriteString(fmt.Sprintf("Athletes: %d | 🔴 high: %d | 🟠 moderate: %d\n\n", len(rep.Indicators), high, moderate))

	for _, ind := range rep.Indicators {
		if ind.RiskLevel == model.RiskLow {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s: ACWR %.2f %s (acute %.0f / chronic %.0f)",
			riskIcon[ind.RiskLevel], name(ind.AthleteName, ind.AthleteID), ind.ACWR,
			trajectoryArrow[ind.Trajectory], ind.AcuteLoad, ind.ChronicLoad))
		if ind.ActiveInjuries > 0 {
			b.WriteString(fmt.Sprintf(" 🩹%d", ind.ActiveInjuries))
		}
		b.WriteString("\n")
	}
	if high == 0 && moderate == 0 {
		b.WriteString("All athletes within the low-risk band ✅\n")
	}
	return b.String()
}

// FormatAlerts formats risk alerts, danger first.
func FormatAlerts(alerts []model.RiskAlert) string {
	if len(alerts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("⚠️ <b>Risk alerts</b>\n\n")
	for _, sev := range []model.Severity{model.SeverityDanger, model.SeverityWarning} {
		for _, a := range alerts {
			if a.Severity != sev {
				continue
			}
			icon := "🟠"
			if sev == model.SeverityDanger {
				icon = "🔴"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", icon, html.EscapeString(a.Message)))
		}
	}
	return b.String()
}

// FormatInjurySummary formats injury counts by body region and type.
func FormatInjurySummary(regions []model.InjurySummary, types []model.InjuryTypeSummary) string {
	var b strings.Builder
	b.WriteString("🩹 <b>Injury summary</b>\n\n")
	if len(regions) == 0 {
		b.WriteString("No injuries recorded.\n")
		return b.String()
	}
	for _, r := range regions {
		b.WriteString(fmt.Sprintf("  %s: %d (%d days lost)\n", html.EscapeString(r.BodyRegion), r.Count, r.DaysLost))
	}
	b.WriteString("  ─────────────────\n")
	for _, t := range types {
		b.WriteString(fmt.Sprintf("  %s: %d\n", t.Type, t.Count))
	}
	return b.String()
}

// FormatLoadSpikes formats week-over-week load spikes.
func FormatLoadSpikes(spikes []model.LoadSpike, percent float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 <b>Load spikes</b> (&gt; %.0f%% week over week)\n\n", percent))
	if len(spikes) == 0 {
		b.WriteString("No spikes this week.\n")
		return b.String()
	}
	for _, s := range spikes {
		b.WriteString(fmt.Sprintf("  %s: %.0f → %.0f (%+.0f%%)\n",
			name(s.AthleteName, s.AthleteID), s.PreviousLoad, s.CurrentLoad, s.ChangePercent))
	}
	return b.String()
}
