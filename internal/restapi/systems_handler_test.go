package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemsHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/systems.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	data := dataMap(t, model)
	systems, ok := data["systems"].([]interface{})
	require.True(t, ok)
	require.Len(t, systems, 3)

	first := systems[0].(map[string]interface{})
	assert.Equal(t, "sys-alpha", first["id"])
	assert.EqualValues(t, 12, first["recordCount"])
}

func TestSystemsHandlerRequiresAPIKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/systems.json")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

func TestSystemsHandlerRejectsWrongKey(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/where/systems.json?key=WRONG")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentTimeHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/current-time.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataMap(t, model)
	assert.NotEmpty(t, data["readableTime"])
	assert.Greater(t, data["time"].(float64), 0.0)
}
