package restapi

import (
	"net/http"

	"residash.io/internal/analysis"
	"residash.io/internal/models"
	"residash.io/internal/utils"
)

// dailyPatternHandler serves the daily cyclic pattern view: the raw
// series against its rolling mean, and the periodogram surfacing
// dominant cycle lengths.
func (api *RestAPI) dailyPatternHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	fieldErrors := make(map[string][]string)
	validateSystemID(id, fieldErrors)
	window := queryInt(r, "window", analysis.DefaultRollingWindow, fieldErrors)
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

	smoothed := analysis.RollingMean(series.Values, window)
	spectrum := analysis.Periodogram(series.Values)

	data := models.NewDailyPatternData(id, series, smoothed, window, spectrum)
	api.sendResponse(w, r, models.NewOKResponse(data))
}
