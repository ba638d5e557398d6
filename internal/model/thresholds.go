package model

import "fmt"

// ThresholdSettings is a fully resolved set of risk thresholds.
type ThresholdSettings struct {
	ACWRModerate     float64 `json:"acwrModerate"`
	ACWRHigh         float64 `json:"acwrHigh"`
	LoadSpikePercent float64 `json:"loadSpikePercent"`
	DefaultDays      int     `json:"defaultDays"`
}

// ThresholdOverrides is a partial ThresholdSettings. Nil fields fall back
// to the defaults when resolved.
type ThresholdOverrides struct {
	ACWRModerate     *float64 `json:"acwrModerate,omitempty" yaml:"acwr_moderate"`
	ACWRHigh         *float64 `json:"acwrHigh,omitempty" yaml:"acwr_high"`
	LoadSpikePercent *float64 `json:"loadSpikePercent,omitempty" yaml:"load_spike_percent"`
	DefaultDays      *int     `json:"defaultDays,omitempty" yaml:"default_days"`
}

// Merge returns a copy of o with every field set in other taking precedence.
func (o *ThresholdOverrides) Merge(other *ThresholdOverrides) *ThresholdOverrides {
	out := &ThresholdOverrides{}
	if o != nil {
		*out = *o
	}
	if other == nil {
		return out
	}
	if other.ACWRModerate != nil {
		out.ACWRModerate = other.ACWRModerate
	}
	if other.ACWRHigh != nil {
		out.ACWRHigh = other.ACWRHigh
	}
	if other.LoadSpikePercent != nil {
		out.LoadSpikePercent = other.LoadSpikePercent
	}
	if other.DefaultDays != nil {
		out.DefaultDays = other.DefaultDays
	}
	return out
}

// Validate reports the first set field that is not positive.
func (o *ThresholdOverrides) Validate() error {
	if o == nil {
		return nil
	}
	if o.ACWRModerate != nil && *o.ACWRModerate <= 0 {
		return fmt.Errorf("acwr_moderate must be positive, got %v", *o.ACWRModerate)
	}
	if o.ACWRHigh != nil && *o.ACWRHigh <= 0 {
		return fmt.Errorf("acwr_high must be positive, got %v", *o.ACWRHigh)
	}
	if o.LoadSpikePercent != nil && *o.LoadSpikePercent <= 0 {
		return fmt.Errorf("load_spike_percent must be positive, got %v", *o.LoadSpikePercent)
	}
	if o.DefaultDays != nil && *o.DefaultDays <= 0 {
		return fmt.Errorf("default_days must be positive, got %d", *o.DefaultDays)
	}
	return nil
}
