package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// DB keeps aggregate delivery counters. It never stores message text or
// anything that identifies who sent a suggestion.
type DB struct {
	*sql.DB
}

// Report is the outcome of forwarding one suggestion to every admin.
type Report struct {
	Attempted int
	Delivered int
	Failed    int
}

// Stats aggregates every recorded Report.
type Stats struct {
	Suggestions int
	Delivered   int
	Failed      int
}

func NewDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &DB{db}, nil
}

func (d *DB) InitSchema() error {
	if _, err := d.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (d *DB) Record(r Report) error {
	_, err := d.Exec(
		"INSERT INTO deliveries (created_at, attempted, delivered, failed) VALUES (?, ?, ?, ?)",
		time.Now().Unix(), r.Attempted, r.Delivered, r.Failed,
	)
	if err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}
	return nil
}

func (d *DB) Stats() (Stats, error) {
	var s Stats
	err := d.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(delivered), 0), COALESCE(SUM(failed), 0) FROM deliveries",
	).Scan(&s.Suggestions, &s.Delivered, &s.Failed)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read stats: %w", err)
	}
	return s, nil
}
