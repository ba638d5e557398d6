package collector

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"LoadSentinel/internal/model"
)

// SQLiteSource reads records from a local SQLite record store.
type SQLiteSource struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSQLiteSource opens (or creates) the record store and runs migrations.
func NewSQLiteSource(dbPath string, log zerolog.Logger) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteSource{db: db, log: log.With().Str("component", "sqlite_source").Logger()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s.log.Info().Str("path", dbPath).Msg("record store opened")
	return s, nil
}

func (s *SQLiteSource) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS athletes (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL DEFAULT '',
			sport_id TEXT NOT NULL DEFAULT '',
			status   TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS daily_loads (
			id               TEXT PRIMARY KEY,
			athlete_id       TEXT NOT NULL,
			date             TEXT NOT NULL,
			training_load    REAL NOT NULL DEFAULT 0,
			rpe              REAL NOT NULL DEFAULT 0,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			session_type     TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_loads_date ON daily_loads(date)`,
		`CREATE INDEX IF NOT EXISTS idx_loads_athlete ON daily_loads(athlete_id)`,

		`CREATE TABLE IF NOT EXISTS injuries (
			id            TEXT PRIMARY KEY,
			athlete_id    TEXT NOT NULL,
			type          TEXT NOT NULL,
			body_region   TEXT NOT NULL DEFAULT '',
			status        TEXT NOT NULL,
			date_occurred TEXT NOT NULL,
			date_resolved TEXT,
			days_lost     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_injuries_athlete ON injuries(athlete_id)`,

		`CREATE TABLE IF NOT EXISTS settings (
			id                 INTEGER PRIMARY KEY CHECK (id = 1),
			acwr_moderate      REAL,
			acwr_high          REAL,
			load_spike_percent REAL,
			default_days       INTEGER
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteSource) Name() string { return "sqlite" }

// Athletes are returned in insertion order.
func (s *SQLiteSource) Athletes(ctx context.Context) ([]model.Athlete, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, sport_id, status FROM athletes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query athletes: %w", err)
	}
	defer rows.Close()

	var out []model.Athlete
	for rows.Next() {
		var a model.Athlete
		if err := rows.Scan(&a.ID, &a.Name, &a.SportID, &a.Status); err != nil {
			return nil, fmt.Errorf("scan athlete: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteSource) DailyLoads(ctx context.Context, since string) ([]model.DailyLoad, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, athlete_id, date, training_load, rpe, duration_minutes, session_type
		FROM daily_loads WHERE substr(date, 1, 10) >= ? ORDER BY date, rowid`, since)
	if err != nil {
		return nil, fmt.Errorf("query daily loads: %w", err)
	}
	defer rows.Close()

	var out []model.DailyLoad
	for rows.Next() {
		var l model.DailyLoad
		if err := rows.Scan(&l.ID, &l.AthleteID, &l.Date, &l.TrainingLoad, &l.RPE, &l.DurationMinutes, &l.SessionType); err != nil {
			return nil, fmt.Errorf("scan daily load: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *SQLiteSource) Injuries(ctx context.Context) ([]model.Injury, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, athlete_id, type, body_region, status, date_occurred, date_resolved, days_lost
		FROM injuries ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query injuries: %w", err)
	}
	defer rows.Close()

	var out []model.Injury
	for rows.Next() {
		var inj model.Injury
		var resolved sql.NullString
		var daysLost sql.NullInt64
		if err := rows.Scan(&inj.ID, &inj.AthleteID, &inj.Type, &inj.BodyRegion, &inj.Status,
			&inj.DateOccurred, &resolved, &daysLost); err != nil {
			return nil, fmt.Errorf("scan injury: %w", err)
		}
		if resolved.Valid {
			inj.DateResolved = &resolved.String
		}
		if daysLost.Valid {
			d := int(daysLost.Int64)
			inj.DaysLost = &d
		}
		out = append(out, inj)
	}
	return out, rows.Err()
}

func (s *SQLiteSource) Thresholds(ctx context.Context) (*model.ThresholdOverrides, error) {
	var moderate, high, spike sql.NullFloat64
	var days sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT acwr_moderate, acwr_high, load_spike_percent, default_days
		FROM settings WHERE id = 1`).Scan(&moderate, &high, &spike, &days)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}

	o := &model.ThresholdOverrides{}
	if moderate.Valid {
		o.ACWRModerate = &moderate.Float64
	}
	if high.Valid {
		o.ACWRHigh = &high.Float64
	}
	if spike.Valid {
		o.LoadSpikePercent = &spike.Float64
	}
	if days.Valid {
		d := int(days.Int64)
		o.DefaultDays = &d
	}
	return o, nil
}

// Fixture is the YAML layout accepted by Seed.
type Fixture struct {
	Athletes   []model.Athlete           `yaml:"athletes"`
	DailyLoads []model.DailyLoad         `yaml:"daily_loads"`
	Injuries   []model.Injury            `yaml:"injuries"`
	Settings   *model.ThresholdOverrides `yaml:"settings"`
}

// LoadFixture reads a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

// Seed upserts every record of the fixture in a single transaction.
func (s *SQLiteSource) Seed(ctx context.Context, f *Fixture) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, a := range f.Athletes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO athletes (id, name, sport_id, status) VALUES (?,?,?,?)
			ON CONFLICT(id) DO UPDATE SET name=excluded.name, sport_id=excluded.sport_id, status=excluded.status`,
			a.ID, a.Name, a.SportID, a.Status); err != nil {
			return fmt.Errorf("upsert athlete %s: %w", a.ID, err)
		}
	}
	for _, l := range f.DailyLoads {
		if _, err := tx.ExecContext(ctx, `INSERT INTO daily_loads
			(id, athlete_id, date, training_load, rpe, duration_minutes, session_type) VALUES (?,?,?,?,?,?,?)
			ON CONFLICT(id) DO UPDATE SET athlete_id=excluded.athlete_id, date=excluded.date,
				training_load=excluded.training_load, rpe=excluded.rpe,
				duration_minutes=excluded.duration_minutes, session_type=excluded.session_type`,
			l.ID, l.AthleteID, l.Date, l.TrainingLoad, l.RPE, l.DurationMinutes, l.SessionType); err != nil {
			return fmt.Errorf("upsert daily load %s: %w", l.ID, err)
		}
	}
	for _, inj := range f.Injuries {
		if _, err := tx.ExecContext(ctx, `INSERT INTO injuries
			(id, athlete_id, type, body_region, status, date_occurred, date_resolved, days_lost) VALUES (?,?,?,?,?,?,?,?)
			ON CONFLICT(id) DO UPDATE SET athlete_id=excluded.athlete_id, type=excluded.type,
				body_region=excluded.body_region, status=excluded.status, date_occurred=excluded.date_occurred,
				date_resolved=excluded.date_resolved, days_lost=excluded.days_lost`,
			inj.ID, inj.AthleteID, string(inj.Type), inj.BodyRegion, string(inj.Status), inj.DateOccurred,
			nullString(inj.DateResolved), nullInt(inj.DaysLost)); err != nil {
			return fmt.Errorf("upsert injury %s: %w", inj.ID, err)
		}
	}
	if st := f.Settings; st != nil {
		if _, err := tx.ExecContext(ctx, `INSERT INTO settings (id, acwr_moderate, acwr_high, load_spike_percent, default_days)
			VALUES (1,?,?,?,?)
			ON CONFLICT(id) DO UPDATE SET acwr_moderate=excluded.acwr_moderate, acwr_high=excluded.acwr_high,
				load_spike_percent=excluded.load_spike_percent, default_days=excluded.default_days`,
			nullFloat(st.ACWRModerate), nullFloat(st.ACWRHigh), nullFloat(st.LoadSpikePercent), nullInt(st.DefaultDays)); err != nil {
			return fmt.Errorf("upsert settings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.log.Info().
		Int("athletes", len(f.Athletes)).
		Int("daily_loads", len(f.DailyLoads)).
		Int("injuries", len(f.Injuries)).
		Msg("fixture seeded")
	return nil
}

func (s *SQLiteSource) Close() error {
	s.log.Info().Msg("closing record store")
	return s.db.Close()
}

func nullString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
