package risk

import "LoadSentinel/internal/model"

// Default threshold values.
const (
	DefaultACWRModerate     = 1.3
	DefaultACWRHigh         = 1.5
	DefaultLoadSpikePercent = 50.0
	DefaultDays             = 30
)

// DefaultThresholds returns the built-in threshold settings.
func DefaultThresholds() model.ThresholdSettings {
	return model.ThresholdSettings{
		ACWRModerate:     DefaultACWRModerate,
		ACWRHigh:         DefaultACWRHigh,
		LoadSpikePercent: DefaultLoadSpikePercent,
		DefaultDays:      DefaultDays,
	}
}

// ResolveThresholds fills every unset field of o from the defaults.
// A nil o yields the defaults. o is never modified.
func ResolveThresholds(o *model.ThresholdOverrides) model.ThresholdSettings {
	t := DefaultThresholds()
	if o == nil {
		return t
	}
	if o.ACWRModerate != nil {
		t.ACWRModerate = *o.ACWRModerate
	}
	if o.ACWRHigh != nil {
		t.ACWRHigh = *o.ACWRHigh
	}
	if o.LoadSpikePercent != nil {
		t.LoadSpikePercent = *o.LoadSpikePercent
	}
	if o.DefaultDays != nil {
		t.DefaultDays = *o.DefaultDays
	}
	return t
}
