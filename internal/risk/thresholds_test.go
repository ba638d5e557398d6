package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"LoadSentinel/internal/model"
)

func TestResolveThresholds_Nil(t *testing.T) {
	got := ResolveThresholds(nil)
	assert.Equal(t, model.ThresholdSettings{
		ACWRModerate:     1.3,
		ACWRHigh:         1.5,
		LoadSpikePercent: 50,
		DefaultDays:      30,
	}, got)
}

func TestResolveThresholds_Partial(t *testing.T) {
	days := 14
	o := &model.ThresholdOverrides{ACWRHigh: floatPtr(1.8), DefaultDays: &days}
	got := ResolveThresholds(o)
	assert.Equal(t, 1.3, got.ACWRModerate)
	assert.Equal(t, 1.8, got.ACWRHigh)
	assert.Equal(t, 50.0, got.LoadSpikePercent)
	assert.Equal(t, 14, got.DefaultDays)

	// caller's struct is untouched
	assert.Nil(t, o.ACWRModerate)
	assert.Nil(t, o.LoadSpikePercent)
}

func TestThresholdOverridesMerge(t *testing.T) {
	base := &model.ThresholdOverrides{ACWRModerate: floatPtr(1.2), ACWRHigh: floatPtr(1.6)}
	merged := base.Merge(&model.ThresholdOverrides{ACWRHigh: floatPtr(1.7)})
	got := ResolveThresholds(merged)
	assert.Equal(t, 1.2, got.ACWRModerate)
	assert.Equal(t, 1.7, got.ACWRHigh)
	assert.Equal(t, 1.6, *base.ACWRHigh)

	var nilBase *model.ThresholdOverrides
	assert.Equal(t, DefaultThresholds(), ResolveThresholds(nilBase.Merge(nil)))
}
