package restapi

import (
	"net/http"

	"residash.io/internal/analysis"
	"residash.io/internal/models"
	"residash.io/internal/utils"
)

// minAnomalySamples is the shortest series the isolation forest is fit
// on; shorter series degrade to an insufficient-data response.
const minAnomalySamples = 8

// anomaliesHandler serves both anomaly detectors over the same series:
// the rolling z-score rule and a freshly fit isolation forest.
func (api *RestAPI) anomaliesHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	fieldErrors := make(map[string][]string)
	validateSystemID(id, fieldErrors)

	window := queryInt(r, "window", analysis.DefaultRollingWindow, fieldErrors)
	if err := utils.ValidateWindow(window); err != nil {
		fieldErrors["window"] = append(fieldErrors["window"], err.Error())
	}

	threshold := queryFloat(r, "threshold", analysis.DefaultZScoreThreshold, fieldErrors)
	if err := utils.ValidateThreshold(threshold); err != nil {
		fieldErrors["threshold"] = append(fieldErrors["threshold"], err.Error())
	}

	forestConfig := analysis.DefaultForestConfig()
	forestConfig.Trees = queryInt(r, "trees", forestConfig.Trees, fieldErrors)
	if err := utils.ValidateTrees(forestConfig.Trees); err != nil {
		fieldErrors["trees"] = append(fieldErrors["trees"], err.Error())
	}

	forestConfig.Contamination = queryFloat(r, "contamination", forestConfig.Contamination, fieldErrors)
	if err := utils.ValidateContamination(forestConfig.Contamination); err != nil {
		fieldErrors["contamination"] = append(fieldErrors["contamination"], err.Error())
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

	if series.Len() < minAnomalySamples {
		empty := models.NewAnomalyData(id, analysis.Series{}, analysis.ZScoreResult{}, analysis.ForestResult{}, window, threshold, forestConfig.Contamination)
		api.sendResponse(w, r, models.NewInsufficientDataResponse(empty))
		return
	}

	zscore := analysis.DetectZScoreAnomalies(series.Values, window, threshold)
	forest := analysis.DetectForestAnomalies(series.Values, forestConfig)

	data := models.NewAnomalyData(id, series, zscore, forest, window, threshold, forestConfig.Contamination)
	api.sendResponse(w, r, models.NewOKResponse(data))
}
