package analysis

import "math"

// DefaultZScoreThreshold flags points more than three rolling standard
// deviations from the rolling mean.
const DefaultZScoreThreshold = 3.0

// minStdDev is the variance floor below which a window is treated as
// constant. Points inside such windows are never flagged.
const minStdDev = 1e-9

// ZScoreResult holds the per-point rolling z-scores and the anomaly
// flags derived from them. Both slices have the same length as the
// input series.
type ZScoreResult struct {
	Scores []float64
	Flags  []bool
}

// FlagCount returns the number of flagged points.
func (r ZScoreResult) FlagCount() int {
	count := 0
	for _, f := range r.Flags {
		if f {
			count++
		}
	}
	return count
}

// DetectZScoreAnomalies flags points whose distance from the trailing
// rolling mean exceeds threshold rolling standard deviations. Windows
// with near-zero variance produce a zero score and never flag.
func DetectZScoreAnomalies(values []float64, window int, threshold float64) ZScoreResult {
	if len(values) == 0 {
		return ZScoreResult{}
	}
	if threshold <= 0 {
		threshold = DefaultZScoreThreshold
	}

	means := RollingMean(values, window)
	stds := RollingStd(values, window)

	result := ZScoreResult{
		Scores: make([]float64, len(values)),
		Flags:  make([]bool, len(values)),
	}
	for i, v := range values {
		if stds[i] < minStdDev {
			continue
		}
		score := math.Abs(v-means[i]) / stds[i]
		result.Scores[i] = score
		result.Flags[i] = score > threshold
	}
	return result
}
