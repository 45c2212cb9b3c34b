// Package storage provides SQLite-based archiving of finished simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The archive is history only: nothing here is ever used to resume or seed
// a simulation.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/treasure-map/internal/world"
)

// Store manages the SQLite database connection for the run archive.
type Store struct {
	db *sql.DB
}

// Run is one archived simulation.
type Run struct {
	ID           string
	Scenario     string
	Turns        int
	Digest       string
	Collected    int // sum over adventurers
	TreasureLeft int
	Adventurers  []AdventurerResult
	CreatedAt    time.Time
}

// AdventurerResult is the final state of one adventurer in a run.
type AdventurerResult struct {
	Name      string
	X, Y      int
	Facing    string
	Collected int
}

// AdventurerStats aggregates an adventurer name across all runs.
type AdventurerStats struct {
	Name      string
	Runs      int
	Collected int
	Best      int
}

// ScenarioStats aggregates all runs of one scenario.
type ScenarioStats struct {
	Scenario   string
	RunsCount  int
	BestHaul   int
	AvgTurns   float64
	LastPlayed time.Time
}

// NewRun captures a finished world as a run with a fresh ID.
func NewRun(scenario string, w *world.World) Run {
	r := Run{
		ID:           uuid.New().String(),
		Scenario:     scenario,
		Turns:        w.Turn(),
		Digest:       w.Digest(),
		TreasureLeft: w.TreasureLeft(),
	}
	for _, a := range w.Adventurers {
		r.Adventurers = append(r.Adventurers, AdventurerResult{
			Name:      a.Name,
			X:         a.Pos.X,
			Y:         a.Pos.Y,
			Facing:    string(a.Facing.Letter()),
			Collected: a.Collected,
		})
		r.Collected += a.Collected
	}
	return r
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			scenario TEXT NOT NULL,
			turns INTEGER NOT NULL,
			digest TEXT NOT NULL,
			collected INTEGER NOT NULL DEFAULT 0,
			treasure_left INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_adventurers (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			name TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			facing TEXT NOT NULL,
			collected INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, seq)
		);
		CREATE INDEX IF NOT EXISTS idx_run_adventurers_name ON run_adventurers(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun archives a run and its adventurers in one transaction.
// A run without an ID gets a fresh one. Returns the run ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, scenario, turns, digest, collected, treasure_left)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Scenario, r.Turns, r.Digest, r.Collected, r.TreasureLeft,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	for i, a := range r.Adventurers {
		_, err = tx.Exec(
			`INSERT INTO run_adventurers (run_id, seq, name, x, y, facing, collected)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, i, a.Name, a.X, a.Y, a.Facing, a.Collected,
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot save adventurer %s: %w", a.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// Adventurers are not loaded; use RunByID for the full record.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, turns, digest, collected, treasure_left, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Scenario, &r.Turns, &r.Digest, &r.Collected, &r.TreasureLeft, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run with its adventurers. Returns nil if not found.
func (s *Store) RunByID(id string) (*Run, error) {
	var r Run
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, scenario, turns, digest, collected, treasure_left, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Scenario, &r.Turns, &r.Digest, &r.Collected, &r.TreasureLeft, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT name, x, y, facing, collected
		 FROM run_adventurers
		 WHERE run_id = ?
		 ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query adventurers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a AdventurerResult
		if err := rows.Scan(&a.Name, &a.X, &a.Y, &a.Facing, &a.Collected); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Adventurers = append(r.Adventurers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// TopAdventurers ranks adventurer names by total treasure collected across
// all runs.
func (s *Store) TopAdventurers(limit int) ([]AdventurerStats, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT name, COUNT(*), SUM(collected), MAX(collected)
		 FROM run_adventurers
		 GROUP BY name
		 ORDER BY SUM(collected) DESC, name
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query adventurers: %w", err)
	}
	defer rows.Close()

	var stats []AdventurerStats
	for rows.Next() {
		var st AdventurerStats
		if err := rows.Scan(&st.Name, &st.Runs, &st.Collected, &st.Best); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// GetScenarioStats retrieves aggregated statistics for one scenario.
func (s *Store) GetScenarioStats(scenario string) (*ScenarioStats, error) {
	stats := &ScenarioStats{Scenario: scenario}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(collected), 0), COALESCE(AVG(turns), 0), MAX(created_at)
		 FROM runs WHERE scenario = ?`,
		scenario,
	).Scan(&stats.RunsCount, &stats.BestHaul, &stats.AvgTurns, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes the runs of one scenario, or every run when scenario is
// empty. Returns the number of runs removed.
func (s *Store) ClearRuns(scenario string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	where, args := "", []any{}
	if scenario != "" {
		where, args = " WHERE scenario = ?", []any{scenario}
	}

	_, err = tx.Exec(`DELETE FROM run_adventurers WHERE run_id IN (SELECT id FROM runs`+where+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear adventurers: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM runs`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
