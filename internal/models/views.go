package models

import (
	"time"

	"residash.io/internal/analysis"
	"residash.io/resdb"
)

// SystemReference identifies one system known to the dashboard.
type SystemReference struct {
	ID          string `json:"id"`
	RecordCount int64  `json:"recordCount"`
	FirstSeen   int64  `json:"firstSeen"`
	LastSeen    int64  `json:"lastSeen"`
}

// SystemListData is the payload of the systems endpoint.
type SystemListData struct {
	Systems []SystemReference `json:"systems"`
}

// NewSystemReference converts a working-copy system summary.
func NewSystemReference(system resdb.System) SystemReference {
	return SystemReference{
		ID:          system.ID,
		RecordCount: system.RecordCount,
		FirstSeen:   system.FirstSeen.UnixMilli(),
		LastSeen:    system.LastSeen.UnixMilli(),
	}
}

// DailyPatternData is the daily cyclic pattern view: the raw and
// smoothed series plus the periodogram of the filtered series.
type DailyPatternData struct {
	SystemID              string    `json:"systemId"`
	Timestamps            []int64   `json:"timestamps"`
	Raw                   []float64 `json:"raw"`
	Smoothed              []float64 `json:"smoothed"`
	Window                int       `json:"window"`
	Frequencies           []float64 `json:"frequencies"`
	Power                 []float64 `json:"power"`
	DominantPeriodMinutes float64   `json:"dominantPeriodMinutes"`
	DominantPeriodHours   float64   `json:"dominantPeriodHours"`
}

// NewDailyPatternData assembles the daily pattern view from its parts.
func NewDailyPatternData(systemID string, series analysis.Series, smoothed []float64, window int, spectrum analysis.PeriodogramResult) DailyPatternData {
	data := DailyPatternData{
		SystemID:    systemID,
		Timestamps:  toMillis(series.Timestamps),
		Raw:         emptyNotNil(series.Values),
		Smoothed:    emptyNotNil(smoothed),
		Window:      window,
		Frequencies: emptyNotNil(spectrum.Frequencies),
		Power:       emptyNotNil(spectrum.Power),
	}
	if period, ok := spectrum.DominantPeriod(); ok {
		data.DominantPeriodMinutes = period
		data.DominantPeriodHours = period / 60
	}
	return data
}

// AnomalyData is the anomaly detection view: both detectors' flags and
// scores over the same series.
type AnomalyData struct {
	SystemID      string    `json:"systemId"`
	Timestamps    []int64   `json:"timestamps"`
	Values        []float64 `json:"values"`
	ZScores       []float64 `json:"zScores"`
	ZScoreFlags   []bool    `json:"zScoreFlags"`
	ForestScores  []float64 `json:"forestScores"`
	ForestFlags   []bool    `json:"forestFlags"`
	Window        int       `json:"window"`
	Threshold     float64   `json:"threshold"`
	ZScoreCount   int       `json:"zScoreCount"`
	ForestCount   int       `json:"forestCount"`
	OverlapCount  int       `json:"overlapCount"`
	Contamination float64   `json:"contamination"`
}

// NewAnomalyData assembles the anomaly view and its overlap count.
func NewAnomalyData(systemID string, series analysis.Series, zscore analysis.ZScoreResult, forest analysis.ForestResult, window int, threshold, contamination float64) AnomalyData {
	overlap := 0
	for i := range zscore.Flags {
		if zscore.Flags[i] && forest.Flags[i] {
			overlap++
		}
	}

	return AnomalyData{
		SystemID:      systemID,
		Timestamps:    toMillis(series.Timestamps),
		Values:        emptyNotNil(series.Values),
		ZScores:       emptyNotNil(zscore.Scores),
		ZScoreFlags:   emptyBoolsNotNil(zscore.Flags),
		ForestScores:  emptyNotNil(forest.Scores),
		ForestFlags:   emptyBoolsNotNil(forest.Flags),
		Window:        window,
		Threshold:     threshold,
		ZScoreCount:   zscore.FlagCount(),
		ForestCount:   forest.FlagCount(),
		OverlapCount:  overlap,
		Contamination: contamination,
	}
}

// CrossoverMarker marks a trend reversal on the Aroon chart.
type CrossoverMarker struct {
	Timestamp int64  `json:"timestamp"`
	Direction string `json:"direction"`
}

// TrendReversalData is the Aroon trend-reversal view. The series starts
// at the first index with a full lookback window.
type TrendReversalData struct {
	SystemID   string            `json:"systemId"`
	Timestamps []int64           `json:"timestamps"`
	AroonUp    []float64         `json:"aroonUp"`
	AroonDown  []float64         `json:"aroonDown"`
	Crossovers []CrossoverMarker `json:"crossovers"`
	Window     int               `json:"window"`
}

// NewTrendReversalData assembles the trend-reversal view, aligning the
// Aroon lines with the timestamps of their defined region.
func NewTrendReversalData(systemID string, series analysis.Series, result analysis.AroonResult, window int) TrendReversalData {
	data := TrendReversalData{
		SystemID:   systemID,
		Timestamps: []int64{},
		AroonUp:    emptyNotNil(result.Up),
		AroonDown:  emptyNotNil(result.Down),
		Crossovers: []CrossoverMarker{},
		Window:     window,
	}
	if len(result.Up) > 0 {
		data.Timestamps = toMillis(series.Timestamps[result.Offset:])
	}
	for _, crossing := range result.Crossovers() {
		data.Crossovers = append(data.Crossovers, CrossoverMarker{
			Timestamp: series.Timestamps[result.Offset+crossing.Index].UnixMilli(),
			Direction: string(crossing.Direction),
		})
	}
	return data
}

// InsightsData is the quick-insights view: scalar callouts only.
type InsightsData struct {
	SystemID        string  `json:"systemId"`
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	Mean            float64 `json:"mean"`
	Latest          float64 `json:"latest"`
	LatestAt        int64   `json:"latestAt"`
	PeakHour        int     `json:"peakHour"`
	TroughHour      int     `json:"troughHour"`
	SampleCount     int     `json:"sampleCount"`
	ZScoreCount     int     `json:"zScoreCount"`
	ForestCount     int     `json:"forestCount"`
	OverlapCount    int     `json:"overlapCount"`
	ZScoreRate      float64 `json:"zScoreRate"`
	ForestRate      float64 `json:"forestRate"`
	DailyCycleHours float64 `json:"dailyCycleHours"`
	TrendReversals  int     `json:"trendReversals"`
}

func toMillis(timestamps []time.Time) []int64 {
	out := make([]int64, len(timestamps))
	for i, ts := range timestamps {
		out[i] = ts.UnixMilli()
	}
	return out
}

// emptyNotNil keeps empty views rendering as [] instead of null.
func emptyNotNil(values []float64) []float64 {
	if values == nil {
		return []float64{}
	}
	return values
}

func emptyBoolsNotNil(values []bool) []bool {
	if values == nil {
		return []bool{}
	}
	return values
}
