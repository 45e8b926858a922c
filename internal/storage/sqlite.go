// Package storage keeps a journal of the runs played in the current session.
// Uses the pure-Go modernc.org/sqlite driver on an in-memory database, so
// nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite journal.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID         int64
	Difficulty string
	Score      int
	Frames     int
	CreatedAt  time.Time
}

// SessionStats aggregates every run recorded so far.
type SessionStats struct {
	Runs    int
	Best    int
	Average float64
}

// OpenSession creates an empty journal. Every :memory: connection is its own
// database, so the pool is pinned to a single connection.
func OpenSession() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The journal is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun appends a finished run and returns its ID.
func (s *Store) RecordRun(r RunRecord) (int64, error) {
	if r.Difficulty == "" {
		return 0, fmt.Errorf("storage: run has no difficulty")
	}
	if r.Score < 0 || r.Frames < 0 {
		return 0, fmt.Errorf("storage: negative score or frames: %d/%d", r.Score, r.Frames)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (difficulty, score, frames) VALUES (?, ?, ?)",
		r.Difficulty, r.Score, r.Frames,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SessionBest returns the highest score recorded for a difficulty, or 0 if
// none has been played.
func (s *Store) SessionBest(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE difficulty = ?",
		difficulty,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, frames, created_at
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
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Score, &r.Frames, &createdAt); err != nil {
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

// Stats returns aggregate figures over every recorded run.
func (s *Store) Stats() (SessionStats, error) {
	var (
		st   SessionStats
		best sql.NullInt64
		avg  sql.NullFloat64
	)
	err := s.db.QueryRow("SELECT COUNT(*), MAX(score), AVG(score) FROM runs").Scan(&st.Runs, &best, &avg)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		st.Best = int(best.Int64)
	}
	if avg.Valid {
		st.Average = avg.Float64
	}
	return st, nil
}

// parseTime handles both time.Time and the SQLite text format.
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
