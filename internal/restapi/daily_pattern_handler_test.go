package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyPatternHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/daily-pattern/sys-alpha.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", model.Text)

	data := dataMap(t, model)
	assert.Equal(t, "sys-alpha", data["systemId"])

	// The fixture spans 00:00-00:12 with one gap, regularized to 13
	// one-minute samples.
	timestamps := data["timestamps"].([]interface{})
	raw := data["raw"].([]interface{})
	smoothed := data["smoothed"].([]interface{})
	require.Len(t, timestamps, 13)
	assert.Len(t, raw, 13)
	assert.Len(t, smoothed, 13)

	power := data["power"].([]interface{})
	frequencies := data["frequencies"].([]interface{})
	require.Len(t, frequencies, len(power))
	for i, p := range power {
		assert.GreaterOrEqual(t, p.(float64), 0.0, "power bin %d", i)
	}
}

func TestDailyPatternHandlerWindowParam(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/daily-pattern/sys-alpha.json?key=TEST&window=3")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := dataMap(t, model)
	assert.EqualValues(t, 3, data["window"])
}

func TestDailyPatternHandlerUnknownSystem(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/daily-pattern/sys-missing.json?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestDailyPatternHandlerEmptyDateRange(t *testing.T) {
	// A valid range with no records degrades to an empty chart.
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/where/daily-pattern/sys-alpha.json?key=TEST&from=2030-01-01&to=2030-01-02")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := dataMap(t, model)
	assert.Empty(t, data["timestamps"])
	assert.Empty(t, data["raw"])
	assert.Empty(t, data["power"])
}

func TestDailyPatternHandlerInvalidWindow(t *testing.T) {
	api := createTestApi(t)

	for _, endpoint := range []string{
		"/api/where/daily-pattern/sys-alpha.json?key=TEST&window=abc",
		"/api/where/daily-pattern/sys-alpha.json?key=TEST&window=0",
		"/api/where/daily-pattern/sys-alpha.json?key=TEST&window=99999",
	} {
		resp, _ := serveApiAndRetrieveEndpoint(t, api, endpoint)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, endpoint)
	}
}

func TestDailyPatternHandlerInvalidDate(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/where/daily-pattern/sys-alpha.json?key=TEST&from=junk")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
