package alertstate

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"LoadSentinel/internal/model"
)

// Manager remembers which alerts were delivered so each athlete is notified
// at most once per day unless the severity escalates.
type Manager struct {
	mu       sync.Mutex
	state    *model.AlertState
	filePath string
	log      zerolog.Logger
}

// NewManager creates a Manager, loading state from disk when present.
func NewManager(filePath string, log zerolog.Logger) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	return &Manager{
		state:    state,
		filePath: filePath,
		log:      log.With().Str("component", "alertstate").Logger(),
	}, nil
}

// GetState returns a copy of the current state.
func (m *Manager) GetState() model.AlertState {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *m.state
	cp.Notified = make(map[string]model.NotifiedAlert, len(m.state.Notified))
	for k, v := range m.state.Notified {
		cp.Notified[k] = v
	}
	return cp
}

// Pending filters out alerts already delivered on the same date at the same
// or a higher severity.
func (m *Manager) Pending(alerts []model.RiskAlert) []model.RiskAlert {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.RiskAlert, 0, len(alerts))
	for _, a := range alerts {
		prev, ok := m.state.Notified[a.AthleteID]
		if ok && prev.Date == a.Date && prev.Severity.Rank() >= a.Severity.Rank() {
			continue
		}
		out = append(out, a)
	}
	return out
}

// MarkSent records delivered alerts and persists the state.
func (m *Manager) MarkSent(alerts []model.RiskAlert, now time.Time) {
	if len(alerts) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range alerts {
		m.state.Notified[a.AthleteID] = model.NotifiedAlert{Date: a.Date, Severity: a.Severity}
	}
	m.state.TotalSent += len(alerts)

	if err := m.save(now); err != nil {
		m.log.Error().Err(err).Msg("failed to save alert state")
	}
}

// Prune drops entries older than the given date (YYYY-MM-DD).
func (m *Manager) Prune(before string, now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, n := range m.state.Notified {
		if n.Date < before {
			delete(m.state.Notified, id)
			removed++
		}
	}
	if removed > 0 {
		if err := m.save(now); err != nil {
			m.log.Error().Err(err).Msg("failed to save alert state after prune")
		}
	}
	return removed
}

func (m *Manager) save(now time.Time) error {
	return SaveState(m.filePath, m.state, now)
}
