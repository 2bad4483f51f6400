// Package stats is a small SQLite-backed page-view counter. It records one
// row per path and exposes the most-viewed pages for the preview dashboard.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for page-view counts.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the stats database at path, ensures the data
// directory exists, and runs schema setup.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("stats: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("stats: open db: %w", err)
	}
	// WAL plus a busy timeout so the beacon endpoint's writes never trip
	// over concurrent reads from the dashboard.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, fmt.Errorf("stats: set pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("stats: ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS page_views (
    path TEXT PRIMARY KEY,
    views INTEGER NOT NULL DEFAULT 0,
    last_viewed TEXT NOT NULL
);
`)
	return err
}

// RecordView increments the view count for path.
func (s *Store) RecordView(path string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
INSERT INTO page_views (path, views, last_viewed) VALUES (?, 1, ?)
ON CONFLICT(path) DO UPDATE SET views = views + 1, last_viewed = excluded.last_viewed
`, path, now)
	return err
}

// PageCount is one row of the top-pages report.
type PageCount struct {
	Path       string `json:"path"`
	Views      int64  `json:"views"`
	LastViewed string `json:"last_viewed"`
}

// TopPages returns up to limit paths ordered by view count descending.
func (s *Store) TopPages(limit int) ([]PageCount, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT path, views, last_viewed FROM page_views ORDER BY views DESC, path ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PageCount
	for rows.Next() {
		var pc PageCount
		if err := rows.Scan(&pc.Path, &pc.Views, &pc.LastViewed); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}
