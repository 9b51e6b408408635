package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectZScoreAnomaliesFlagsSingleSpike(t *testing.T) {
	// 48 samples of a constant 10 with one spike of 1000 at row 24:
	// only the spike may flag at threshold 3.
	values := make([]float64, 48)
	for i := range values {
		values[i] = 10
	}
	values[24] = 1000

	result := DetectZScoreAnomalies(values, 60, 3.0)
	require.Len(t, result.Flags, 48)

	for i, flagged := range result.Flags {
		if i == 24 {
			assert.True(t, flagged, "spike at row 24 should flag")
		} else {
			assert.False(t, flagged, "row %d should not flag", i)
		}
	}
	assert.Equal(t, 1, result.FlagCount())
}

func TestDetectZScoreAnomaliesNeverFlagsZeroVariance(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 42.5
	}

	result := DetectZScoreAnomalies(values, 10, 3.0)
	assert.Zero(t, result.FlagCount())
	for _, score := range result.Scores {
		assert.Zero(t, score)
	}
}

func TestDetectZScoreAnomaliesEmptyInput(t *testing.T) {
	result := DetectZScoreAnomalies(nil, 60, 3.0)
	assert.Empty(t, result.Flags)
	assert.Empty(t, result.Scores)
	assert.Zero(t, result.FlagCount())
}

func TestDetectZScoreAnomaliesDefaultsThreshold(t *testing.T) {
	values := []float64{10, 10, 10, 10, 1000, 10, 10, 10}

	strict := DetectZScoreAnomalies(values, 60, 0)
	explicit := DetectZScoreAnomalies(values, 60, DefaultZScoreThreshold)
	assert.Equal(t, explicit.Flags, strict.Flags)
}

func TestDetectZScoreAnomaliesQuietSeriesDoesNotFlag(t *testing.T) {
	values := []float64{50, 51, 49, 50, 52, 48, 50, 51, 49, 50}
	result := DetectZScoreAnomalies(values, 5, 3.0)
	assert.Zero(t, result.FlagCount())
}
