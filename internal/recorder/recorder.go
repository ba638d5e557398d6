package recorder

import (
	"time"

	"LoadSentinel/internal/model"
)

// EvaluationSnapshot holds all data for one evaluation run.
type EvaluationSnapshot struct {
	RunID     string
	Trigger   string // "DAILY" or "MANUAL"
	Timestamp time.Time
	Report    *model.RiskReport
}

// Recorder persists evaluation history for later analysis.
type Recorder interface {
	RecordEvaluation(snap *EvaluationSnapshot) error
	RecordAlerts(runID string, alerts []model.RiskAlert, delivered bool) error
	Close() error
}
