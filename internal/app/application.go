package app

import (
	"log/slog"

	"residash.io/internal/appconf"
	"residash.io/internal/telemetry"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a structured logger, and the
// telemetry manager that owns the loaded residency data.
type Application struct {
	Config           appconf.Config
	TelemetryConfig  telemetry.Config
	Logger           *slog.Logger
	TelemetryManager *telemetry.Manager
}
