package risk

import "LoadSentinel/internal/model"

// ComputeRiskLevel maps an ACWR value to a risk tier. A value equal to a
// threshold belongs to the lower band.
func ComputeRiskLevel(acwr float64, t model.ThresholdSettings) model.RiskLevel {
	switch {
	case acwr > t.ACWRHigh:
		return model.RiskHigh
	case acwr > t.ACWRModerate:
		return model.RiskModerate
	default:
		return model.RiskLow
	}
}
