package model

// DateLayout is the calendar-day format used for every stored date.
const DateLayout = "2006-01-02"

// DailyLoad is a single training/session entry.
// TrainingLoad is precomputed upstream (conventionally RPE × duration).
type DailyLoad struct {
	ID              string  `json:"id" yaml:"id"`
	AthleteID       string  `json:"athleteId" yaml:"athlete_id"`
	Date            string  `json:"date" yaml:"date"` // YYYY-MM-DD
	TrainingLoad    float64 `json:"trainingLoad" yaml:"training_load"`
	RPE             float64 `json:"rpe" yaml:"rpe"`
	DurationMinutes int     `json:"durationMinutes" yaml:"duration_minutes"`
	SessionType     string  `json:"sessionType" yaml:"session_type"`
}

// LoadWindows holds the acute and chronic loads for one athlete, both
// expressed as load per 7-day period.
type LoadWindows struct {
	Acute   float64 `json:"acute"`
	Chronic float64 `json:"chronic"`
}

// LoadTrend is one point of a load trend series.
type LoadTrend struct {
	Date         string  `json:"date"`
	TrainingLoad float64 `json:"trainingLoad"`
	RPE          float64 `json:"rpe"`
}

// LoadSpike flags a week-over-week acute load jump.
type LoadSpike struct {
	AthleteID     string  `json:"athleteId"`
	AthleteName   string  `json:"athleteName"`
	PreviousLoad  float64 `json:"previousLoad"`
	CurrentLoad   float64 `json:"currentLoad"`
	ChangePercent float64 `json:"changePercent"`
}
