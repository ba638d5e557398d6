package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"LoadSentinel/internal/model"
)

func intPtr(v int) *int { return &v }

func TestComputeInjurySummaryByBodyRegion(t *testing.T) {
	injuries := []model.Injury{
		{BodyRegion: "Knee", DaysLost: intPtr(10)},
		{BodyRegion: "Ankle", DaysLost: intPtr(3)},
		{BodyRegion: "Knee", DaysLost: intPtr(5)},
	}
	got := ComputeInjurySummaryByBodyRegion(injuries)
	assert.Equal(t, []model.InjurySummary{
		{BodyRegion: "Knee", Count: 2, DaysLost: 15},
		{BodyRegion: "Ankle", Count: 1, DaysLost: 3},
	}, got)
}

func TestComputeInjurySummaryByBodyRegion_NilDaysLost(t *testing.T) {
	injuries := []model.Injury{
		{BodyRegion: "Hamstring", DaysLost: nil},
		{BodyRegion: "Hamstring", DaysLost: intPtr(4)},
	}
	got := ComputeInjurySummaryByBodyRegion(injuries)
	assert.Equal(t, []model.InjurySummary{{BodyRegion: "Hamstring", Count: 2, DaysLost: 4}}, got)
}

func TestComputeInjurySummaryByBodyRegion_TiesKeepInputOrder(t *testing.T) {
	injuries := []model.Injury{
		{BodyRegion: "Shoulder"},
		{BodyRegion: "Ankle"},
		{BodyRegion: "Knee"},
		{BodyRegion: "Knee"},
	}
	got := ComputeInjurySummaryByBodyRegion(injuries)
	assert.Equal(t, "Knee", got[0].BodyRegion)
	assert.Equal(t, "Shoulder", got[1].BodyRegion)
	assert.Equal(t, "Ankle", got[2].BodyRegion)
}

func TestComputeInjurySummaryByBodyRegion_ExactMatch(t *testing.T) {
	injuries := []model.Injury{{BodyRegion: "knee"}, {BodyRegion: "Knee"}}
	assert.Len(t, ComputeInjurySummaryByBodyRegion(injuries), 2)
}

func TestComputeInjurySummaryByType(t *testing.T) {
	injuries := []model.Injury{
		{Type: model.InjuryTypeIllness},
		{Type: model.InjuryTypeInjury},
		{Type: model.InjuryTypeInjury},
	}
	got := ComputeInjurySummaryByType(injuries)
	assert.Equal(t, []model.InjuryTypeSummary{
		{Type: model.InjuryTypeInjury, Count: 2},
		{Type: model.InjuryTypeIllness, Count: 1},
	}, got)
}

func TestInjurySummaries_Empty(t *testing.T) {
	regions := ComputeInjurySummaryByBodyRegion(nil)
	assert.NotNil(t, regions)
	assert.Empty(t, regions)

	types := ComputeInjurySummaryByType(nil)
	assert.NotNil(t, types)
	assert.Empty(t, types)
}

func TestCountActiveInjuries(t *testing.T) {
	injuries := []model.Injury{
		{AthleteID: "a1", Status: model.InjuryActive},
		{AthleteID: "a1", Status: model.InjuryResolved},
		{AthleteID: "a1", Status: model.InjuryActive},
		{AthleteID: "a2", Status: model.InjuryResolved},
	}
	counts := CountActiveInjuries(injuries)
	assert.Equal(t, 2, counts["a1"])
	assert.Equal(t, 0, counts["a2"])
}
