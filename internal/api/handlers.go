package api

import (
	"net/http"
	"strconv"

	"LoadSentinel/internal/api/respond"
	"LoadSentinel/internal/calculator"
	"LoadSentinel/internal/model"
	"LoadSentinel/internal/risk"
)

const maxTrendDays = 365

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]string{
		"status": "ok",
		"source": s.collector.Source.Name(),
	})
}

// report collects a fresh dataset and evaluates it with a single reference time.
func (s *Server) report(w http.ResponseWriter, r *http.Request) (*model.RiskReport, bool) {
	now := s.now()
	ds, err := s.collector.Collect(r.Context(), now)
	if err != nil {
		s.log.Error().Err(err).Msg("collect dataset")
		respond.WriteError(w, http.StatusBadGateway, "SOURCE_UNAVAILABLE", "record store unavailable")
		return nil, false
	}
	return risk.BuildReport(ds, now), true
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.report(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, rep)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.report(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"alerts":     nonNil(rep.Alerts),
		"thresholds": rep.Thresholds,
	})
}

func (s *Server) handleInjuryRegions(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.report(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, rep.InjuriesByRegion)
}

func (s *Server) handleInjuryTypes(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.report(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, rep.InjuriesByType)
}

func (s *Server) handleLoadSpikes(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.report(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, nonNil(rep.Spikes))
}

// handleLoadTrend serves the squad trend, or one athlete's trend when ?athlete= is set.
func (s *Server) handleLoadTrend(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxTrendDays {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_DAYS", "days must be an integer between 1 and 365")
			return
		}
		days = n
	}

	now := s.now()
	ds, err := s.collector.CollectSince(r.Context(), now, days)
	if err != nil {
		s.log.Error().Err(err).Msg("collect dataset")
		respond.WriteError(w, http.StatusBadGateway, "SOURCE_UNAVAILABLE", "record store unavailable")
		return
	}
	if days == 0 {
		days = ds.Thresholds.DefaultDays
	}
	opts := calculator.TrendOptions{Days: days}

	var trend []model.LoadTrend
	if athleteID := r.URL.Query().Get("athlete"); athleteID != "" {
		trend = calculator.ComputeAthleteLoadTrends(calculator.FilterAthlete(ds.Loads, athleteID), opts, now)
	} else {
		trend = calculator.ComputeLoadTrends(ds.Loads, opts, now)
	}
	respond.WriteJSONObject(w, http.StatusOK, trend)
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
