package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"LoadSentinel/internal/model"
)

// NewRunID returns a fresh evaluation run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// SQLiteRecorder persists evaluation history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets dashboards read while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS evaluations (
			run_id        TEXT PRIMARY KEY,
			timestamp     INTEGER NOT NULL,
			trigger_type  TEXT,
			athletes      INTEGER,
			high_risk     INTEGER,
			moderate_risk INTEGER,
			alerts        INTEGER,
			spikes        INTEGER,
			acwr_moderate REAL,
			acwr_high     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluations_ts ON evaluations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS risk_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          TEXT NOT NULL,
			timestamp       INTEGER NOT NULL,
			athlete_id      TEXT NOT NULL,
			acute_load      REAL,
			chronic_load    REAL,
			acwr            REAL,
			risk_level      TEXT,
			active_injuries INTEGER,
			trajectory      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_athlete_ts ON risk_snapshots(athlete_id, timestamp)`,

		`CREATE TABLE IF NOT EXISTS alert_history (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       TEXT NOT NULL,
			timestamp    INTEGER NOT NULL,
			athlete_id   TEXT NOT NULL,
			athlete_name TEXT,
			severity     TEXT,
			message      TEXT,
			alert_date   TEXT,
			delivered    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alert_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordEvaluation(snap *EvaluationSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep := snap.Report
	ts := snap.Timestamp.Unix()
	var high, moderate int
	for _, ind := range rep.Indicators {
		switch ind.RiskLevel {
		case model.RiskHigh:
			high++
		case model.RiskModerate:
			moderate++
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO evaluations
		(run_id, timestamp, trigger_type, athletes, high_risk, moderate_risk, alerts, spikes, acwr_moderate, acwr_high)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		snap.RunID, ts, snap.Trigger, len(rep.Indicators), high, moderate,
		len(rep.Alerts), len(rep.Spikes), rep.Thresholds.ACWRModerate, rep.Thresholds.ACWRHigh,
	); err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}

	for _, ind := range rep.Indicators {
		if _, err := tx.Exec(`INSERT INTO risk_snapshots
			(run_id, timestamp, athlete_id, acute_load, chronic_load, acwr, risk_level, active_injuries, trajectory)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			snap.RunID, ts, ind.AthleteID, ind.AcuteLoad, ind.ChronicLoad, ind.ACWR,
			string(ind.RiskLevel), ind.ActiveInjuries, string(ind.Trajectory),
		); err != nil {
			return fmt.Errorf("insert risk snapshot: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecordAlerts(runID string, alerts []model.RiskAlert, delivered bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ts int64
	err := r.db.QueryRow(`SELECT timestamp FROM evaluations WHERE run_id = ?`, runID).Scan(&ts)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("lookup evaluation: %w", err)
	}
	for _, a := range alerts {
		if _, err := r.db.Exec(`INSERT INTO alert_history
			(run_id, timestamp, athlete_id, athlete_name, severity, message, alert_date, delivered)
			VALUES (?,?,?,?,?,?,?,?)`,
			runID, ts, a.AthleteID, a.AthleteName, string(a.Severity), a.Message, a.Date, delivered,
		); err != nil {
			return fmt.Errorf("insert alert: %w", err)
		}
	}
	return nil
}

// CountEvaluations returns the number of stored runs.
func (r *SQLiteRecorder) CountEvaluations() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM evaluations`).Scan(&n)
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
