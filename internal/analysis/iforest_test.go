package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectForestAnomaliesFlagsOutlier(t *testing.T) {
	// 200 points in a tight band with one far outlier: the outlier must
	// receive the highest score and be flagged.
	values := make([]float64, 200)
	for i := range values {
		values[i] = 50 + math.Sin(float64(i))*2
	}
	values[100] = 5000

	result := DetectForestAnomalies(values, DefaultForestConfig())
	require.Len(t, result.Scores, 200)

	for i, score := range result.Scores {
		if i == 100 {
			continue
		}
		assert.Less(t, score, result.Scores[100], "outlier must out-score point %d", i)
	}
	assert.True(t, result.Flags[100])

	// ceil(0.01 * 200) = 2 points flagged.
	assert.Equal(t, 2, result.FlagCount())
}

func TestDetectForestAnomaliesScoresInUnitInterval(t *testing.T) {
	values := []float64{1, 2, 3, 100, 4, 5, 2, 3, 1, 4, 2, 5}
	result := DetectForestAnomalies(values, DefaultForestConfig())

	for i, score := range result.Scores {
		assert.GreaterOrEqual(t, score, 0.0, "point %d", i)
		assert.LessOrEqual(t, score, 1.0, "point %d", i)
	}
}

func TestDetectForestAnomaliesDeterministicRefit(t *testing.T) {
	values := []float64{10, 12, 11, 13, 10, 900, 12, 11, 10, 13, 12, 11}

	first := DetectForestAnomalies(values, DefaultForestConfig())
	second := DetectForestAnomalies(values, DefaultForestConfig())
	assert.Equal(t, first.Scores, second.Scores)
	assert.Equal(t, first.Flags, second.Flags)
}

func TestDetectForestAnomaliesConstantSeriesFlagsNothing(t *testing.T) {
	values := make([]float64, 64)
	for i := range values {
		values[i] = 9.5
	}

	result := DetectForestAnomalies(values, DefaultForestConfig())
	assert.Zero(t, result.FlagCount())
}

func TestDetectForestAnomaliesEmptyInput(t *testing.T) {
	result := DetectForestAnomalies(nil, DefaultForestConfig())
	assert.Empty(t, result.Scores)
	assert.Empty(t, result.Flags)
}

func TestDetectForestAnomaliesRejectsBadConfig(t *testing.T) {
	values := []float64{1, 2, 3, 50, 4, 5}

	bad := ForestConfig{Trees: -1, SubsampleSize: 0, Contamination: 2}
	withDefaults := DetectForestAnomalies(values, DefaultForestConfig())
	sanitized := DetectForestAnomalies(values, bad)
	assert.Equal(t, withDefaults.Scores, sanitized.Scores)
}
