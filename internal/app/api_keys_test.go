package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"residash.io/internal/appconf"
)

func TestIsInvalidAPIKey(t *testing.T) {
	application := &Application{
		Config: appconf.Config{ApiKeys: []string{"test", "web"}},
	}

	assert.False(t, application.IsInvalidAPIKey("test"))
	assert.False(t, application.IsInvalidAPIKey("web"))
	assert.True(t, application.IsInvalidAPIKey("wrong"))
	assert.True(t, application.IsInvalidAPIKey(""))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	application := &Application{
		Config: appconf.Config{ApiKeys: []string{"test"}},
	}

	valid := httptest.NewRequest("GET", "/api/where/systems.json?key=test", nil)
	assert.False(t, application.RequestHasInvalidAPIKey(valid))

	missing := httptest.NewRequest("GET", "/api/where/systems.json", nil)
	assert.True(t, application.RequestHasInvalidAPIKey(missing))

	wrong := httptest.NewRequest("GET", "/api/where/systems.json?key=nope", nil)
	assert.True(t, application.RequestHasInvalidAPIKey(wrong))
}
