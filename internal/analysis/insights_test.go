package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlySeries(t *testing.T, byHour map[int]float64) Series {
	t.Helper()

	var s Series
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 24; h++ {
		v, ok := byHour[h]
		if !ok {
			v = 50
		}
		s.Timestamps = append(s.Timestamps, day.Add(time.Duration(h)*time.Hour))
		s.Values = append(s.Values, v)
	}
	return s
}

func TestSummarizeBasicStats(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := Series{
		Timestamps: []time.Time{base, base.Add(time.Minute), base.Add(2 * time.Minute)},
		Values:     []float64{20, 80, 35},
	}

	insights, ok := Summarize(s)
	require.True(t, ok)

	assert.InDelta(t, 20.0, insights.Min, 1e-9)
	assert.InDelta(t, 80.0, insights.Max, 1e-9)
	assert.InDelta(t, 45.0, insights.Mean, 1e-9)
	assert.InDelta(t, 35.0, insights.Latest, 1e-9)
	assert.Equal(t, base.Add(2*time.Minute), insights.LatestAt)
	assert.Equal(t, 3, insights.SampleCount)
}

func TestSummarizePeakAndTroughHours(t *testing.T) {
	s := hourlySeries(t, map[int]float64{14: 95, 4: 5})

	insights, ok := Summarize(s)
	require.True(t, ok)
	assert.Equal(t, 14, insights.PeakHour)
	assert.Equal(t, 4, insights.TroughHour)
}

func TestSummarizeEmptySeries(t *testing.T) {
	_, ok := Summarize(Series{})
	assert.False(t, ok)
}
