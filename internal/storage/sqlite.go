// Package storage provides persistence for run history and lifetime
// statistics. The SQLite store uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies; Badger, Redis and in-memory backends provide the
// same key-value surface for statistics.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/skydive/internal/systems"
)

// Store manages the SQLite database connection for run history and stats.
type Store struct {
	db *sql.DB
}

// RunRecord represents a single finished run.
type RunRecord struct {
	ID                   string
	Level                string
	Score                int
	MaxStreak            int
	CoinsCollected       int
	MultipliersCollected int
	ObstaclesHit         int
	Duration             float64 // seconds
	CreatedAt            time.Time
}

// NewRunRecord builds a record for a run that just ended on level.
func NewRunRecord(level string, s systems.RunSummary, seconds float32) RunRecord {
	return RunRecord{
		Level:                level,
		Score:                s.Score,
		MaxStreak:            s.MaxStreak,
		CoinsCollected:       s.CoinsCollected,
		MultipliersCollected: s.MultipliersCollected,
		ObstaclesHit:         s.ObstaclesHit,
		Duration:             float64(seconds),
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions write concurrently; a single connection serializes them.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			level TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_streak INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			multipliers INTEGER NOT NULL DEFAULT 0,
			obstacles_hit INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level, score DESC);

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);
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

// SaveRun records a finished run. A record without an ID gets a fresh UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, level, score, max_streak, coins, multipliers, obstacles_hit, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Level,
		r.Score,
		r.MaxStreak,
		r.CoinsCollected,
		r.MultipliersCollected,
		r.ObstaclesHit,
		r.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.ID, nil
}

const runColumns = `id, level, score, max_streak, coins, multipliers, obstacles_hit, duration_secs, created_at`

// TopRuns retrieves the top N runs for the given level, or across every
// level when level is empty. Results are ordered by score descending.
func (s *Store) TopRuns(level string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR level = ?
		 ORDER BY score DESC, created_at DESC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all levels.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*RunRecord, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Level,
			&r.Score,
			&r.MaxStreak,
			&r.CoinsCollected,
			&r.MultipliersCollected,
			&r.ObstaclesHit,
			&r.Duration,
			&createdAt,
		); err != nil {
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

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given level, or across every
// level when level is empty. Returns 0 if no runs exist.
func (s *Store) HighScore(level string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE ? = '' OR level = ?",
		level, level,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes run history for the given level, or all of it when
// level is empty.
func (s *Store) ClearRuns(level string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR level = ?", level, level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Level      string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestStreak int
	LastPlayed time.Time
}

// AllLevelStats retrieves statistics for every level that has been played.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(max_streak), MAX(created_at)
		 FROM runs
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.Level, &ls.RunsCount, &ls.HighScore, &ls.AvgScore, &ls.TotalScore, &ls.BestStreak, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.Level] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// GetInt returns the stored value for key, or def if it has never been set.
func (s *Store) GetInt(key string, def int) (int, error) {
	var v int
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return v, nil
}

// PutInt stores value under key.
func (s *Store) PutInt(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Clear removes every stored key. Run history is kept.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		return fmt.Errorf("storage: cannot clear values: %w", err)
	}
	return nil
}

var _ systems.KeyValueStorage = (*Store)(nil)
