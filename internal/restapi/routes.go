package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/systems.json", validateAPIKey(api, api.systemsHandler))
	router.Handler(http.MethodGet, "/api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/where/daily-pattern/:id", validateAPIKey(api, api.dailyPatternHandler))
	router.Handler(http.MethodGet, "/api/where/anomalies/:id", validateAPIKey(api, api.anomaliesHandler))
	router.Handler(http.MethodGet, "/api/where/trend-reversals/:id", validateAPIKey(api, api.trendReversalsHandler))
	router.Handler(http.MethodGet, "/api/where/insights/:id", validateAPIKey(api, api.insightsHandler))
}
