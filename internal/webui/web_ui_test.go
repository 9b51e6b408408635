package webui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residash.io/internal/app"
	"residash.io/internal/appconf"
	"residash.io/internal/logging"
	"residash.io/internal/telemetry"
)

func createTestWebUI(t *testing.T) *WebUI {
	telemetryConfig := telemetry.Config{
		Source: filepath.Join("../../testdata", "sample_residency.csv"),
		DBPath: ":memory:",
		Env:    appconf.Test,
	}
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	manager, err := telemetry.InitManager(telemetryConfig, logger)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	return NewWebUI(&app.Application{
		Config:           appconf.Config{Env: appconf.Test},
		TelemetryConfig:  telemetryConfig,
		Logger:           logger,
		TelemetryManager: manager,
	})
}

func serveWebUI(t *testing.T, path string) *httptest.ResponseRecorder {
	webUI := createTestWebUI(t)
	mux := http.NewServeMux()
	webUI.SetWebUIRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestDashboardHandler(t *testing.T) {
	rec := serveWebUI(t, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Residency Dashboard")
	assert.Contains(t, rec.Body.String(), "plotly")
}

func TestDebugIndexHandlerSystems(t *testing.T) {
	rec := serveWebUI(t, "/debug/?dataType=systems")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sys-alpha")
}

func TestDebugIndexHandlerWarnings(t *testing.T) {
	rec := serveWebUI(t, "/debug/?dataType=warnings")

	assert.Equal(t, http.StatusOK, rec.Code)
	// The fixture carries malformed rows that surface as warnings.
	assert.Contains(t, rec.Body.String(), "len=3")
}

func TestDebugIndexHandlerUnknownType(t *testing.T) {
	rec := serveWebUI(t, "/debug/?dataType=bogus")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please use one of the following")
}
