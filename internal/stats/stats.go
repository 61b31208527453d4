// Package stats keeps a SQLite log of writing sessions: the word counts
// measured whenever a chapter is written, polished, or confirmed.
//
// Recording is best-effort: a stats failure must never fail the underlying
// chapter operation, so callers log and move on when an error comes back.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB is the statistics database handle.
type DB struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	chapter_id TEXT NOT NULL,
	action TEXT NOT NULL,
	words_before INTEGER NOT NULL,
	words_after INTEGER NOT NULL,
	recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_chapter ON sessions(chapter_id);
`

// Open opens or creates the statistics database at dbPath.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create stats directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize stats database: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// RecordSession appends one measurement for a chapter.
func (d *DB) RecordSession(chapterID, action string, wordsBefore, wordsAfter int) error {
	_, err := d.db.Exec(
		`INSERT INTO sessions (chapter_id, action, words_before, words_after, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		chapterID, action, wordsBefore, wordsAfter, time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// ChapterStats aggregates the sessions recorded for one chapter.
type ChapterStats struct {
	ChapterID      string `json:"chapter_id"`
	Sessions       int    `json:"sessions"`
	LatestWords    int    `json:"latest_words"`
	LastRecordedAt string `json:"last_recorded_at"`
}

// ByChapter returns per-chapter aggregates ordered by chapter id.
func (d *DB) ByChapter() ([]ChapterStats, error) {
	rows, err := d.db.Query(`
		SELECT s.chapter_id,
		       COUNT(*),
		       MAX(s.recorded_at),
		       (SELECT words_after FROM sessions
		        WHERE chapter_id = s.chapter_id
		        ORDER BY id DESC LIMIT 1)
		FROM sessions s
		GROUP BY s.chapter_id
		ORDER BY s.chapter_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var out []ChapterStats
	for rows.Next() {
		var cs ChapterStats
		if err := rows.Scan(&cs.ChapterID, &cs.Sessions, &cs.LastRecordedAt, &cs.LatestWords); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}
