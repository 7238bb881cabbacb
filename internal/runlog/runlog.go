// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runlog keeps a local SQLite log of completed screening runs.
// It records one summary row per run (query, counts, timestamp), not the
// article records themselves.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// Entry is one completed run.
type Entry struct {
	Query    string
	RanAt    time.Time
	Found    int
	Included int
	Skipped  int
}

// Store manages the run log database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the run log at cfg.Path and bootstraps the schema.
func Open(cfg types.RunLogConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating run log schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS runs (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		ran_at TEXT NOT NULL,
		found INTEGER NOT NULL,
		included INTEGER NOT NULL,
		skipped INTEGER NOT NULL
	)`
	_, err := s.db.Exec(stmt)
	return err
}

// Record appends one run summary.
func (s *Store) Record(ctx context.Context, e Entry) error {
	ranAt := e.RanAt
	if ranAt.IsZero() {
		ranAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (query, ran_at, found, included, skipped) VALUES (?, ?, ?, ?, ?)`,
		e.Query, ranAt.UTC().Format(time.RFC3339), e.Found, e.Included, e.Skipped)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit of 0 returns
// the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT query, ran_at, found, included, skipped FROM runs ORDER BY rowid DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying run log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ranAt string
		if err := rows.Scan(&e.Query, &ranAt, &e.Found, &e.Included, &e.Skipped); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, ranAt); parseErr == nil {
			e.RanAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
