package telemetry

import (
	"time"

	"residash.io/internal/appconf"
)

// Config controls where residency telemetry is loaded from and how the
// working copy behaves.
type Config struct {
	// Source is a local CSV path or an http(s) URL.
	Source string
	// DBPath is the SQLite working-copy location, ":memory:" by default.
	DBPath string
	Env    appconf.Environment
	// RefreshInterval re-fetches URL sources periodically. Zero disables
	// refresh; local files are never re-read.
	RefreshInterval time.Duration
	Verbose         bool
}

func (config Config) refreshEnabled(isLocalFile bool) bool {
	return !isLocalFile && config.RefreshInterval > 0
}
