package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LoadSentinel/internal/model"
)

func TestSQLiteRecorder(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "history.db"), zerolog.Nop())
	require.NoError(t, err)
	defer rec.Close()

	runID := NewRunID()
	alerts := []model.RiskAlert{
		{AthleteID: "a2", AthleteName: "Leo", Severity: model.SeverityDanger, Message: "Leo has an elevated ACWR", Date: "2026-10-18"},
	}
	snap := &EvaluationSnapshot{
		RunID:     runID,
		Trigger:   "DAILY",
		Timestamp: time.Date(2026, 10, 18, 7, 0, 0, 0, time.UTC),
		Report: &model.RiskReport{
			Indicators: []model.RiskIndicator{
				{AthleteID: "a1", ACWR: 1.0, RiskLevel: model.RiskLow},
				{AthleteID: "a2", ACWR: 2.0, RiskLevel: model.RiskHigh, Trajectory: model.TrajectoryRising},
			},
			Alerts: alerts,
		},
	}
	require.NoError(t, rec.RecordEvaluation(snap))
	require.NoError(t, rec.RecordAlerts(runID, alerts, true))

	n, err := rec.CountEvaluations()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var high int
	require.NoError(t, rec.db.QueryRow(`SELECT high_risk FROM evaluations WHERE run_id = ?`, runID).Scan(&high))
	assert.Equal(t, 1, high)

	var snapshots, stored int
	require.NoError(t, rec.db.QueryRow(`SELECT COUNT(*) FROM risk_snapshots WHERE run_id = ?`, runID).Scan(&snapshots))
	require.NoError(t, rec.db.QueryRow(`SELECT COUNT(*) FROM alert_history WHERE run_id = ? AND delivered = 1`, runID).Scan(&stored))
	assert.Equal(t, 2, snapshots)
	assert.Equal(t, 1, stored)
}

func TestNewRunID_Unique(t *testing.T) {
	assert.NotEqual(t, NewRunID(), NewRunID())
}
