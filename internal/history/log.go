// Package history keeps a local SQLite log of finished games. The JSON
// stats file remains the source of truth for the counters; the log only
// feeds the history views.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Outcome says how a game ended.
type Outcome string

const (
	OutcomeWin     Outcome = "win"
	OutcomeLearned Outcome = "learned"
)

// Record is one finished game.
type Record struct {
	ID             string
	PlayedAt       time.Time
	Outcome        Outcome
	Character      string
	QuestionsAsked int
}

// Log appends and lists game records.
type Log struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies pragmas and
// creates the schema.
func Open(dsn string) (*Log, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Log{db: db}, nil
}

// Close closes the database connection.
func (l *Log) Close() error {
	return l.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id              TEXT PRIMARY KEY,
	played_at       TEXT NOT NULL,
	outcome         TEXT NOT NULL,
	character       TEXT NOT NULL,
	questions_asked INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_games_played_at ON games (played_at DESC);
`

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Append records a finished game. A missing ID or timestamp is filled
// in.
func (l *Log) Append(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO games (id, played_at, outcome, character, questions_asked)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.PlayedAt.UTC().Format(time.RFC3339), string(rec.Outcome),
		rec.Character, rec.QuestionsAsked,
	)
	if err != nil {
		return fmt.Errorf("insert game record: %w", err)
	}
	return nil
}

// Recent returns up to limit games, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, played_at, outcome, character, questions_asked
		 FROM games ORDER BY played_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query game records: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var rec Record
		var playedAt, outcome string
		if err := rows.Scan(&rec.ID, &playedAt, &outcome, &rec.Character, &rec.QuestionsAsked); err != nil {
			return nil, fmt.Errorf("scan game record: %w", err)
		}
		rec.PlayedAt, err = time.Parse(time.RFC3339, playedAt)
		if err != nil {
			return nil, fmt.Errorf("parse played_at %q: %w", playedAt, err)
		}
		rec.Outcome = Outcome(outcome)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
