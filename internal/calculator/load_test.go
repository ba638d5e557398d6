package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"LoadSentinel/internal/model"
)

func daysAgo(n int) string {
	return Day(refNow.AddDate(0, 0, -n))
}

func TestAggregateLoadWindows(t *testing.T) {
	loads := []model.DailyLoad{
		{AthleteID: "a1", Date: daysAgo(0), TrainingLoad: 400},
		{AthleteID: "a1", Date: daysAgo(6), TrainingLoad: 300},  // last acute day
		{AthleteID: "a1", Date: daysAgo(7), TrainingLoad: 200},  // chronic only
		{AthleteID: "a1", Date: daysAgo(27), TrainingLoad: 100}, // last chronic day
		{AthleteID: "a1", Date: daysAgo(28), TrainingLoad: 999}, // outside both
		{AthleteID: "a2", Date: daysAgo(0), TrainingLoad: 5000},
	}

	w := AggregateLoadWindows(loads, "a1", refNow)
	assert.Equal(t, 700.0, w.Acute)
	assert.Equal(t, 250.0, w.Chronic) // (400+300+200+100)/4
	assert.InDelta(t, 2.8, ACWR(w), 1e-9)
}

func TestAggregateLoadWindows_NoData(t *testing.T) {
	w := AggregateLoadWindows(nil, "a1", refNow)
	assert.Zero(t, w.Acute)
	assert.Zero(t, w.Chronic)
	assert.Zero(t, ACWR(w))
}

func TestAggregateLoadWindows_IgnoresFutureDates(t *testing.T) {
	loads := []model.DailyLoad{
		{AthleteID: "a1", Date: daysAgo(-1), TrainingLoad: 500},
	}
	w := AggregateLoadWindows(loads, "a1", refNow)
	assert.Zero(t, w.Acute)
}

func TestGroupByAthlete(t *testing.T) {
	loads := []model.DailyLoad{
		{ID: "1", AthleteID: "a1"},
		{ID: "2", AthleteID: "a2"},
		{ID: "3", AthleteID: "a1"},
	}
	g := GroupByAthlete(loads)
	assert.Len(t, g["a1"], 2)
	assert.Equal(t, "3", g["a1"][1].ID)
	assert.Len(t, g["a2"], 1)
}
