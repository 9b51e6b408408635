package resdb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"residash.io/internal/appconf"
)

// createDB opens the SQLite database and creates the residency tables.
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("refusing to create an on-disk database in tests: %s", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// A pooled second connection to ":memory:" would open a separate,
	// empty database.
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS systems (
			system_id     TEXT PRIMARY KEY,
			record_count  INTEGER NOT NULL DEFAULT 0,
			first_seen    INTEGER NOT NULL,
			last_seen     INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS residency_records (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			system_id   TEXT NOT NULL REFERENCES systems(system_id),
			recorded_at INTEGER NOT NULL,
			residency   REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_system_time
			ON residency_records(system_id, recorded_at);
	`)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing schema: %w", err)
	}

	return db, nil
}
