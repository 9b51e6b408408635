package restapi

import (
	"net/http"

	"residash.io/internal/analysis"
	"residash.io/internal/models"
	"residash.io/internal/utils"
)

// insightsHandler serves the quick-insights callouts: summary stats
// plus headline numbers from the other three views at their default
// parameters.
func (api *RestAPI) insightsHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	fieldErrors := make(map[string][]string)
	validateSystemID(id, fieldErrors)
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

	summary, ok := analysis.Summarize(series)
	if !ok {
		api.sendResponse(w, r, models.NewInsufficientDataResponse(models.InsightsData{SystemID: id}))
		return
	}

	data := models.InsightsData{
		SystemID:    id,
		Min:         summary.Min,
		Max:         summary.Max,
		Mean:        summary.Mean,
		Latest:      summary.Latest,
		LatestAt:    summary.LatestAt.UnixMilli(),
		PeakHour:    summary.PeakHour,
		TroughHour:  summary.TroughHour,
		SampleCount: summary.SampleCount,
	}

	if series.Len() >= minAnomalySamples {
		zscore := analysis.DetectZScoreAnomalies(series.Values, analysis.DefaultRollingWindow, analysis.DefaultZScoreThreshold)
		forest := analysis.DetectForestAnomalies(series.Values, analysis.DefaultForestConfig())

		data.ZScoreCount = zscore.FlagCount()
		data.ForestCount = forest.FlagCount()
		for i := range zscore.Flags {
			if zscore.Flags[i] && forest.Flags[i] {
				data.OverlapCount++
			}
		}
		data.ZScoreRate = float64(data.ZScoreCount) / float64(series.Len())
		data.ForestRate = float64(data.ForestCount) / float64(series.Len())
	}

	if period, ok := analysis.Periodogram(series.Values).DominantPeriod(); ok {
		data.DailyCycleHours = period / 60
	}

	if series.Len() >= analysis.DefaultAroonWindow {
		aroon := analysis.Aroon(series.Values, analysis.DefaultAroonWindow)
		data.TrendReversals = len(aroon.Crossovers())
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
