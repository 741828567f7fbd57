// Package store keeps an SQLite index of the words and samples written by the capture tool.
//
// The index is secondary to the sample folders on disk: it records which
// folder belongs to which word and how many frames it holds, so samples can
// be listed without walking the actions tree.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested word or sample is not indexed.
var ErrNotFound = errors.New("not found")

// pragmas are applied to every connection before migrations run. Sample
// rows cascade with their word, so foreign keys must be on.
var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// Store is the sample index database.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the sample index at indexPath, creating the file and its tables
// when missing.
func New(indexPath string) (*Store, error) {
	db, err := sql.Open("sqlite", indexPath)
	if err != nil {
		return nil, fmt.Errorf("open sample index %s: %w", indexPath, err)
	}
	// One writer at a time; the capture loop is the only client.
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	s := &Store{db: db, path: indexPath}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sample index: %w", err)
	}

	return s, nil
}

// Close releases the index.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the connection for ad-hoc queries in tests and tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path is the file the index lives in.
func (s *Store) Path() string {
	return s.path
}
