// Package journal keeps a local SQLite record of every API call the CLI
// makes: method, parameters, outcome and timing.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Call outcomes.
const (
	StatusOK        = "ok"        // envelope status ok
	StatusError     = "error"     // envelope carried a failure message
	StatusMalformed = "malformed" // body was not an envelope
	StatusFailed    = "failed"    // transport failed, no body
)

// Journal manages the call log using SQLite
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Call represents one recorded API call
type Call struct {
	ID       string        `json:"id"`
	Method   string        `json:"method"`
	Params   string        `json:"params"` // form-encoded, method first
	Status   string        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Bytes    int           `json:"bytes"`
	Duration time.Duration `json:"duration"`
	Started  time.Time     `json:"started"`
}

// Open creates or opens a journal backed by SQLite at dbPath.
// Use ":memory:" for a throwaway journal.
func Open(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS calls (
			id TEXT PRIMARY KEY,
			method TEXT NOT NULL,
			params TEXT NOT NULL,
			status TEXT NOT NULL,
			message TEXT,
			bytes INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL,
			started_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_calls_started ON calls(started_at);
		CREATE INDEX IF NOT EXISTS idx_calls_method ON calls(method, started_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Journal{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores one call. Started is stored with millisecond precision.
func (j *Journal) Record(ctx context.Context, c Call) error {
	query := `
		INSERT INTO calls (id, method, params, status, message, bytes, duration_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var message sql.NullString
	if c.Message != "" {
		message = sql.NullString{String: c.Message, Valid: true}
	}

	_, err := j.db.ExecContext(ctx, query,
		c.ID,
		c.Method,
		c.Params,
		c.Status,
		message,
		c.Bytes,
		c.Duration.Milliseconds(),
		c.Started.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert call: %w", err)
	}

	return nil
}

// Filter narrows a Recent query. Zero values match everything.
type Filter struct {
	Method string
	Status string
	Limit  int
}

// Recent returns recorded calls, newest first.
func (j *Journal) Recent(ctx context.Context, f Filter) ([]Call, error) {
	query := `
		SELECT id, method, params, status, COALESCE(message, ''), bytes, duration_ms, started_at
		FROM calls
		WHERE (? = '' OR method = ?)
		AND (? = '' OR status = ?)
		ORDER BY started_at DESC, rowid DESC
	`
	args := []any{f.Method, f.Method, f.Status, f.Status}

	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calls: %w", err)
	}
	defer rows.Close()

	var calls []Call
	for rows.Next() {
		var c Call
		var durationMs int64
		var startedMs int64

		err := rows.Scan(
			&c.ID,
			&c.Method,
			&c.Params,
			&c.Status,
			&c.Message,
			&c.Bytes,
			&durationMs,
			&startedMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan call: %w", err)
		}

		c.Duration = time.Duration(durationMs) * time.Millisecond
		c.Started = time.UnixMilli(startedMs)

		calls = append(calls, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating calls: %w", err)
	}

	return calls, nil
}

// Cleanup removes calls older than maxAge and returns how many were deleted
func (j *Journal) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := j.now().Add(-maxAge).UnixMilli()

	result, err := j.db.ExecContext(ctx, "DELETE FROM calls WHERE started_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old calls: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// Count returns the number of recorded calls
// If status is non-empty, only calls with that outcome are counted
func (j *Journal) Count(ctx context.Context, status string) (int, error) {
	query := "SELECT COUNT(*) FROM calls"
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}

	var count int
	err := j.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count calls: %w", err)
	}

	return count, nil
}
