package model

// InjuryType distinguishes injuries from illnesses.
type InjuryType string

const (
	InjuryTypeInjury  InjuryType = "injury"
	InjuryTypeIllness InjuryType = "illness"
)

// InjuryStatus is the lifecycle state of an injury record.
type InjuryStatus string

const (
	InjuryActive   InjuryStatus = "active"
	InjuryResolved InjuryStatus = "resolved"
)

// Injury is an injury or illness record. A nil DaysLost counts as zero.
type Injury struct {
	ID           string       `json:"id" yaml:"id"`
	AthleteID    string       `json:"athleteId" yaml:"athlete_id"`
	Type         InjuryType   `json:"type" yaml:"type"`
	BodyRegion   string       `json:"bodyRegion" yaml:"body_region"`
	Status       InjuryStatus `json:"status" yaml:"status"`
	DateOccurred string       `json:"dateOccurred" yaml:"date_occurred"`
	DateResolved *string      `json:"dateResolved" yaml:"date_resolved"`
	DaysLost     *int         `json:"daysLost" yaml:"days_lost"`
}

// InjurySummary aggregates injuries sharing a body region.
type InjurySummary struct {
	BodyRegion string `json:"bodyRegion"`
	Count      int    `json:"count"`
	DaysLost   int    `json:"daysLost"`
}

// InjuryTypeSummary aggregates injuries sharing a type.
type InjuryTypeSummary struct {
	Type  InjuryType `json:"type"`
	Count int        `json:"count"`
}
