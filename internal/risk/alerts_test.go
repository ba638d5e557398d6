package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LoadSentinel/internal/model"
)

func TestComputeRiskAlerts(t *testing.T) {
	indicators := []model.RiskIndicator{
		{AthleteID: "a1", AthleteName: "Mia Kovac", ACWR: 2.0},
		{AthleteID: "a2", AthleteName: "Leo Tanaka", ACWR: 1.4},
		{AthleteID: "a3", AthleteName: "Sam Okafor", ACWR: 1.0},
	}
	alerts := ComputeRiskAlerts(indicators, DefaultThresholds(), refNow)
	require.Len(t, alerts, 2)

	assert.Equal(t, model.SeverityDanger, alerts[0].Severity)
	assert.Equal(t, "Mia Kovac", alerts[0].AthleteName)
	assert.Contains(t, alerts[0].Message, "Mia Kovac")
	assert.Contains(t, alerts[0].Message, "2.00")
	assert.Equal(t, "2026-10-18", alerts[0].Date)

	assert.Equal(t, model.SeverityWarning, alerts[1].Severity)
	assert.Contains(t, alerts[1].Message, "Leo Tanaka")
}

func TestComputeRiskAlerts_Boundaries(t *testing.T) {
	indicators := []model.RiskIndicator{
		{AthleteID: "a1", ACWR: 1.3},
		{AthleteID: "a2", ACWR: 1.5},
	}
	alerts := ComputeRiskAlerts(indicators, DefaultThresholds(), refNow)
	require.Len(t, alerts, 1)
	assert.Equal(t, "a2", alerts[0].AthleteID)
	assert.Equal(t, model.SeverityWarning, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "Athlete a2")
}

func TestComputeRiskAlerts_None(t *testing.T) {
	alerts := ComputeRiskAlerts(nil, DefaultThresholds(), refNow)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
