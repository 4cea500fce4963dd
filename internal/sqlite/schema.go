package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

// migrations holds the DDL for each schema version; migrations[i] moves the
// database from version i to i+1. Append only: released steps never change.
var migrations = [][]string{
	// 1: the three collections and the created_at index behind recent-N.
	{
		`CREATE TABLE items (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL DEFAULT '',
    front_image TEXT NOT NULL DEFAULT '',
    back_image TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL,
    game_number TEXT NOT NULL DEFAULT '',
    country TEXT NOT NULL DEFAULT '',
    region TEXT NOT NULL DEFAULT '',
    continent TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    state TEXT NOT NULL DEFAULT '',
    release_date TEXT NOT NULL DEFAULT '',
    closing_date TEXT NOT NULL DEFAULT '',
    price TEXT NOT NULL DEFAULT '',
    printer TEXT NOT NULL DEFAULT '',
    emission_size TEXT NOT NULL DEFAULT '',
    collector TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    series INTEGER NOT NULL DEFAULT 0,
    series_name TEXT NOT NULL DEFAULT '',
    rare INTEGER NOT NULL DEFAULT 0,
    promotional INTEGER NOT NULL DEFAULT 0,
    ai_generated INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`,
		`CREATE INDEX idx_items_created_at ON items(created_at);`,
		`CREATE TABLE documents (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    file_name TEXT NOT NULL DEFAULT '',
    data TEXT NOT NULL,
    created_at TEXT NOT NULL
);`,
		`CREATE TABLE websites (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    url TEXT NOT NULL,
    country TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    logo TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`,
	},
	// 2: items track their last overwrite.
	{
		`ALTER TABLE items ADD COLUMN updated_at TEXT NOT NULL DEFAULT '';`,
		`UPDATE items SET updated_at = created_at;`,
	},
}

// SchemaVersion is the version a freshly migrated database reports.
var SchemaVersion = len(migrations)

// userVersion reads PRAGMA user_version.
func userVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// migrate applies every step above the database's current version, each in
// its own transaction together with the version bump.
func migrate(db *sql.DB) error {
	current, err := userVersion(db)
	if err != nil {
		return err
	}
	if current > SchemaVersion {
		return fmt.Errorf("%w: have %d, support %d", types.ErrSchemaTooNew, current, SchemaVersion)
	}

	for v := current; v < SchemaVersion; v++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", v+1, err)
		}
		for _, stmt := range migrations[v] {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d: %w", v+1, err)
			}
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("setting schema version %d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", v+1, err)
		}
	}
	return nil
}
