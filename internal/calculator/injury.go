package calculator

import (
	"sort"

	"LoadSentinel/internal/model"
)

// DaysLost returns the injury's days lost, treating nil as zero.
func DaysLost(inj model.Injury) int {
	if inj.DaysLost == nil {
		return 0
	}
	return *inj.DaysLost
}

// ComputeInjurySummaryByBodyRegion groups injuries by exact body region,
// sorted by count descending. Equal counts keep first-appearance order.
func ComputeInjurySummaryByBodyRegion(injuries []model.Injury) []model.InjurySummary {
	index := make(map[string]int)
	out := make([]model.InjurySummary, 0)
	for _, inj := range injuries {
		i, ok := index[inj.BodyRegion]
		if !ok {
			i = len(out)
			index[inj.BodyRegion] = i
			out = append(out, model.InjurySummary{BodyRegion: inj.BodyRegion})
		}
		out[i].Count++
		out[i].DaysLost += DaysLost(inj)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ComputeInjurySummaryByType groups injuries by type, sorted by count descending.
// Equal counts keep first-appearance order.
func ComputeInjurySummaryByType(injuries []model.Injury) []model.InjuryTypeSummary {
	index := make(map[model.InjuryType]int)
	out := make([]model.InjuryTypeSummary, 0)
	for _, inj := range injuries {
		i, ok := index[inj.Type]
		if !ok {
			i = len(out)
			index[inj.Type] = i
			out = append(out, model.InjuryTypeSummary{Type: inj.Type})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// CountActiveInjuries counts active injuries per athlete.
func CountActiveInjuries(injuries []model.Injury) map[string]int {
	out := make(map[string]int)
	for _, inj := range injuries {
		if inj.Status == model.InjuryActive {
			out[inj.AthleteID]++
		}
	}
	return out
}
