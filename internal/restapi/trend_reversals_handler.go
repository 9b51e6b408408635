package restapi

import (
	"net/http"

	"residash.io/internal/analysis"
	"residash.io/internal/models"
	"residash.io/internal/utils"
)

// trendReversalsHandler serves the Aroon Up/Down view with crossover
// markers over a trailing lookback window.
func (api *RestAPI) trendReversalsHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	fieldErrors := make(map[string][]string)
	validateSystemID(id, fieldErrors)
	window := queryInt(r, "window", analysis.DefaultAroonWindow, fieldErrors)
	if err := utils.ValidateWindow(window); err != nil {
		fieldErrors["window"] = append(fieldErrors["window"], err.Error())
	}
	from, to := queryDateRange(r, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if api.TelemetryManager.FindSystem(r.Context(), id) == nil {
		api.sendNotFound(w, r)
		return
	}

	series, err := api.TelemetryManager.SeriesForSystem(r.Context(), id, from, to)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if series.Len() < window {
		empty := models.NewTrendReversalData(id, analysis.Series{}, analysis.AroonResult{}, window)
		api.sendResponse(w, r, models.NewInsufficientDataResponse(empty))
		return
	}

	result := analysis.Aroon(series.Values, window)
	data := models.NewTrendReversalData(id, series, result, window)
	api.sendResponse(w, r, models.NewOKResponse(data))
}
