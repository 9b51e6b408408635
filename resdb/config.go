// Package resdb keeps the working copy of loaded residency records in
// a SQLite database and exposes the typed queries the API reads from.
// The database is in-memory by default; nothing survives the process.
package resdb

import "residash.io/internal/appconf"

// Config holds configuration options for the Client
type Config struct {
	DBPath  string // Path to SQLite database file, ":memory:" by default
	Env     appconf.Environment
	verbose bool
}

func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	if dbPath == "" {
		dbPath = ":memory:"
	}
	return Config{
		DBPath:  dbPath,
		Env:     env,
		verbose: verbose,
	}
}
