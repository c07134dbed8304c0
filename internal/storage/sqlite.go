// Package storage keeps a journal of finished flights for the current
// process. Uses the pure-Go modernc.org/sqlite driver on an in-memory
// database, so nothing outlives the session.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// ErrClosed is returned when the journal is used after Close.
var ErrClosed = errors.New("storage: journal is closed")

const timeLayout = "2006-01-02 15:04:05.000"

// Journal records finished runs in SQLite. It is safe for concurrent use,
// including Close racing a write.
type Journal struct {
	mu sync.RWMutex
	db *sql.DB
}

// RunRecord is a single finished flight.
type RunRecord struct {
	ID        int64
	Course    string
	Pilot     string // "player", "autopilot" or the SSH user
	Score     int
	Scored    int // Rings flown through
	Missed    int // Rings passed outside the outer radius
	CrashRing int // Index of the ring that ended the run, -1 if none did
	Ticks     uint64
	CreatedAt time.Time
}

// Totals aggregates every run in the journal.
type Totals struct {
	Runs     int
	Scored   int
	Missed   int
	Best     int
	AvgScore float64
}

// Open creates a journal. An empty dsn selects MemoryDSN.
func Open(dsn string) (*Journal, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the schema.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			course TEXT NOT NULL,
			pilot TEXT NOT NULL,
			score INTEGER NOT NULL,
			scored INTEGER NOT NULL DEFAULT 0,
			missed INTEGER NOT NULL DEFAULT 0,
			crash_ring INTEGER NOT NULL DEFAULT -1,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_course_score ON runs(course, score DESC);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database. The journal's contents are gone afterwards.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// SaveRun records a finished run and returns its ID. A zero CreatedAt is
// replaced with the current time.
func (j *Journal) SaveRun(r RunRecord) (int64, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.db == nil {
		return 0, ErrClosed
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	result, err := j.db.Exec(
		`INSERT INTO runs (course, pilot, score, scored, missed, crash_ring, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Course, r.Pilot, r.Score, r.Scored, r.Missed, r.CrashRing, int64(r.Ticks),
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (j *Journal) RecentRuns(limit int) ([]RunRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, course, pilot, score, scored, missed, crash_ring, ticks, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var ticks int64
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Course, &r.Pilot, &r.Score, &r.Scored, &r.Missed,
			&r.CrashRing, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		if parsed, err := time.Parse(timeLayout, createdAt); err == nil {
			r.CreatedAt = parsed
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score recorded for a course, or 0.
func (j *Journal) BestScore(course string) (int, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.db == nil {
		return 0, ErrClosed
	}

	var score sql.NullInt64
	err := j.db.QueryRow("SELECT MAX(score) FROM runs WHERE course = ?", course).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Totals aggregates all runs in the journal.
func (j *Journal) Totals() (Totals, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.db == nil {
		return Totals{}, ErrClosed
	}

	var t Totals
	err := j.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(scored), 0), COALESCE(SUM(missed), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM runs`,
	).Scan(&t.Runs, &t.Scored, &t.Missed, &t.Best, &t.AvgScore)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot get totals: %w", err)
	}

	return t, nil
}
