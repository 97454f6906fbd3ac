// Package stats persists completed pomodoro sessions and answers aggregate
// queries over them.
package stats

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/model"
)

// Store provides SQLite-backed persistence for pomodoro sessions.
type Store struct {
	db *sql.DB
}

// NewStore opens the SQLite database at dbPath and creates tables if they
// don't exist.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (store *Store) Close() error {
	return store.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		task TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL,
		completed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_completed_at ON sessions(completed_at);
	`
	_, err := db.Exec(schema)
	return err
}

// AddSession stores one completed pomodoro. It satisfies the engine's
// Reporter interface.
func (store *Store) AddSession(record model.SessionRecord) error {
	completedAt := record.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	_, err := store.db.Exec(
		`INSERT INTO sessions (id, task, duration_minutes, completed_at)
		 VALUES (?, ?, ?, ?)`,
		uuid.New().String(), record.Task, record.DurationMinutes, completedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// TotalsBetween returns the session count and focused minutes in [from, to).
func (store *Store) TotalsBetween(from, to time.Time) (Totals, error) {
	row := store.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(duration_minutes), 0)
		 FROM sessions
		 WHERE completed_at >= ? AND completed_at < ?`,
		from, to,
	)

	var totals Totals
	if err := row.Scan(&totals.Sessions, &totals.Minutes); err != nil {
		return Totals{}, fmt.Errorf("scan totals: %w", err)
	}

	return totals, nil
}

// TaskTotalsBetween breaks the period's totals down by task label, busiest
// tasks first.
func (store *Store) TaskTotalsBetween(from, to time.Time) ([]TaskTotals, error) {
	rows, err := store.db.Query(
		`SELECT task, COUNT(*), COALESCE(SUM(duration_minutes), 0)
		 FROM sessions
		 WHERE completed_at >= ? AND completed_at < ?
		 GROUP BY task
		 ORDER BY COUNT(*) DESC, task ASC`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query task totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []TaskTotals
	for rows.Next() {
		var entry TaskTotals
		if err := rows.Scan(&entry.Task, &entry.Sessions, &entry.Minutes); err != nil {
			return nil, fmt.Errorf("scan task totals: %w", err)
		}
		totals = append(totals, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return totals, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (store *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := store.db.Query(
		`SELECT id, task, duration_minutes, completed_at
		 FROM sessions
		 ORDER BY completed_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []Session
	for rows.Next() {
		var session Session
		if err := rows.Scan(&session.ID, &session.Task, &session.DurationMinutes, &session.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return sessions, nil
}
