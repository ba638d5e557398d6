package model

import "time"

// RiskLevel is the injury-risk tier derived from ACWR.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Trajectory describes how ACWR moved over the last week.
type Trajectory string

const (
	TrajectoryRising  Trajectory = "rising"
	TrajectoryStable  Trajectory = "stable"
	TrajectoryFalling Trajectory = "falling"
)

// Severity is the alert level.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Rank orders severities so that danger outranks warning.
func (s Severity) Rank() int {
	switch s {
	case SeverityDanger:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// RiskIndicator is the per-athlete ACWR result.
type RiskIndicator struct {
	AthleteID      string     `json:"athleteId"`
	AthleteName    string     `json:"athleteName"`
	AcuteLoad      float64    `json:"acuteLoad"`
	ChronicLoad    float64    `json:"chronicLoad"`
	ACWR           float64    `json:"acwr"`
	RiskLevel      RiskLevel  `json:"riskLevel"`
	ActiveInjuries int        `json:"activeInjuries"`
	Trajectory     Trajectory `json:"trajectory,omitempty"`
}

// RiskAlert is emitted for athletes whose ACWR crosses a threshold.
type RiskAlert struct {
	AthleteID   string   `json:"athleteId"`
	AthleteName string   `json:"athleteName"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Date        string   `json:"date"`
}

// Dataset is everything the engine needs for one evaluation.
type Dataset struct {
	Athletes   []Athlete
	Loads      []DailyLoad
	Injuries   []Injury
	Thresholds ThresholdSettings
}

// RiskReport bundles every derived result of one evaluation.
type RiskReport struct {
	GeneratedAt      time.Time           `json:"generatedAt"`
	Thresholds       ThresholdSettings   `json:"thresholds"`
	Indicators       []RiskIndicator     `json:"indicators"`
	Alerts           []RiskAlert         `json:"alerts"`
	Spikes           []LoadSpike         `json:"spikes"`
	InjuriesByRegion []InjurySummary     `json:"injuriesByRegion"`
	InjuriesByType   []InjuryTypeSummary `json:"injuriesByType"`
	LoadTrend        []LoadTrend         `json:"loadTrend"`
}
