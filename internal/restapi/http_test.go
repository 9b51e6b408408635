package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"residash.io/internal/app"
	"residash.io/internal/appconf"
	"residash.io/internal/logging"
	"residash.io/internal/models"
	"residash.io/internal/telemetry"
)

// createTestApi creates a RestAPI instance backed by the testdata
// fixture for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	telemetryConfig := telemetry.Config{
		Source: filepath.Join("../../testdata", "sample_residency.csv"),
		DBPath: ":memory:",
		Env:    appconf.Test,
	}
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	manager, err := telemetry.InitManager(telemetryConfig, logger)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.Test,
			ApiKeys: []string{"TEST"},
		},
		TelemetryConfig:  telemetryConfig,
		Logger:           logger,
		TelemetryManager: manager,
	}

	return &RestAPI{Application: application}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to
// the specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// dataMap unwraps the envelope's data field for field-level assertions.
func dataMap(t *testing.T, response models.ResponseModel) map[string]interface{} {
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "response data should decode to an object, got %T", response.Data)
	return data
}
