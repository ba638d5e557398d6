package recorder

import "LoadSentinel/internal/model"

// NoopRecorder is a no-op implementation used when no history database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordEvaluation(_ *EvaluationSnapshot) error            { return nil }
func (n *NoopRecorder) RecordAlerts(_ string, _ []model.RiskAlert, _ bool) error { return nil }
func (n *NoopRecorder) Close() error                                             { return nil }
