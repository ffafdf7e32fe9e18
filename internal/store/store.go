// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("key not found")

const timeLayout = time.RFC3339Nano

// migrations run in order. The database's user_version records how many have
// been applied, so new steps must only ever be appended.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trace_sessions (
		id INTEGER PRIMARY KEY,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		letter TEXT NOT NULL,
		lang TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		completed INTEGER NOT NULL,
		samples INTEGER NOT NULL,
		lifts INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trace_sessions_ended_at ON trace_sessions(ended_at);`,
	`CREATE INDEX IF NOT EXISTS idx_trace_sessions_letter ON trace_sessions(letter);`,
	`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`,
}

const letterAggregateColumns = `letter, COUNT(*) AS attempts, SUM(completed) AS completions,
	SUM(lifts) AS lifts, SUM(duration_ms) AS duration_ms`

// Store wraps SQLite access for trace history and small key/value state.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path, creating its directory
// when needed, and brings the schema up to date.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", i+1, err)
		}
		// PRAGMA does not accept bound parameters.
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}
	return nil
}

// InsertSession stores a finished or abandoned trace session and returns its id.
func (s *Store) InsertSession(ctx context.Context, session model.TraceSession) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO trace_sessions (started_at, ended_at, letter, lang, difficulty, completed, samples, lifts, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.StartedAt.Format(timeLayout),
		session.EndedAt.Format(timeLayout),
		session.Letter,
		session.Lang,
		string(session.Difficulty),
		session.Completed,
		session.Samples,
		session.Lifts,
		session.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}
	return res.LastInsertId()
}

// GetWeakLetters aggregates the window most recent sessions per letter. An
// empty lang covers every language.
func (s *Store) GetWeakLetters(ctx context.Context, window int, lang string) ([]model.LetterAggregate, error) {
	if window <= 0 {
		return nil, nil
	}
	return query(ctx, s.db, scanLetterAggregate,
		`WITH recent AS (
			SELECT * FROM trace_sessions
			WHERE (? = '' OR lang = ?)
			ORDER BY ended_at DESC
			LIMIT ?
		)
		SELECT `+letterAggregateColumns+` FROM recent GROUP BY letter`,
		lang, lang, window)
}

// ListSessions returns sessions matching the language and start-date filters,
// oldest first. Last is applied by the caller.
func (s *Store) ListSessions(ctx context.Context, cfg model.StatsConfig) ([]model.SessionAggregate, error) {
	var where []string
	var args []any
	if cfg.Lang != "" {
		where = append(where, "lang = ?")
		args = append(args, cfg.Lang)
	}
	if cfg.Since != nil {
		where = append(where, "ended_at >= ?")
		args = append(args, cfg.Since.Format(timeLayout))
	}
	stmt := `SELECT id, ended_at, letter, completed, samples, lifts, duration_ms FROM trace_sessions`
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}
	return query(ctx, s.db, scanSessionAggregate, stmt+" ORDER BY ended_at ASC", args...)
}

// ListLetterAggregatesForSessions aggregates per-letter stats across the
// given sessions.
func (s *Store) ListLetterAggregatesForSessions(ctx context.Context, sessionIDs []int64) ([]model.LetterAggregate, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	args := make([]any, len(sessionIDs))
	for i, id := range sessionIDs {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(sessionIDs)), ",")
	return query(ctx, s.db, scanLetterAggregate,
		`SELECT `+letterAggregateColumns+` FROM trace_sessions
		WHERE id IN (`+placeholders+`) GROUP BY letter`,
		args...)
}

type levelCount struct {
	level string
	count int
}

// DifficultyCounts returns how many letters were completed at each level.
func (s *Store) DifficultyCounts(ctx context.Context, lang string) (map[difficulty.Level]int, error) {
	counts, err := query(ctx, s.db, func(rows *sql.Rows) (levelCount, error) {
		var c levelCount
		err := rows.Scan(&c.level, &c.count)
		return c, err
	}, `SELECT difficulty, COUNT(*) FROM trace_sessions
		WHERE completed = 1 AND (? = '' OR lang = ?)
		GROUP BY difficulty`, lang, lang)
	if err != nil {
		return nil, err
	}
	result := make(map[difficulty.Level]int, len(counts))
	for _, c := range counts {
		result[difficulty.Level(c.level)] = c.count
	}
	return result, nil
}

// query runs stmt and scans every row with scan.
func query[T any](ctx context.Context, db *sql.DB, scan func(*sql.Rows) (T, error), stmt string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return out, nil
}

func scanLetterAggregate(rows *sql.Rows) (model.LetterAggregate, error) {
	var agg model.LetterAggregate
	err := rows.Scan(&agg.Letter, &agg.Attempts, &agg.Completions, &agg.Lifts, &agg.DurationMs)
	return agg, err
}

func scanSessionAggregate(rows *sql.Rows) (model.SessionAggregate, error) {
	var agg model.SessionAggregate
	var endedAt string
	if err := rows.Scan(&agg.SessionID, &endedAt, &agg.Letter, &agg.Completed, &agg.Samples, &agg.Lifts, &agg.DurationMs); err != nil {
		return agg, err
	}
	parsed, err := time.Parse(timeLayout, endedAt)
	if err != nil {
		return agg, fmt.Errorf("invalid ended_at %q: %w", endedAt, err)
	}
	agg.EndedAt = parsed
	return agg, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrNotFound
	case err != nil:
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
