package analysis

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Insights is the quick-summary aggregation over a filtered series.
type Insights struct {
	Min         float64
	Max         float64
	Mean        float64
	Latest      float64
	LatestAt    time.Time
	PeakHour    int
	TroughHour  int
	SampleCount int
}

// Summarize computes min/max/mean/latest plus the peak and trough
// hour-of-day by hourly mean. ok is false for an empty series.
func Summarize(s Series) (Insights, bool) {
	if s.IsEmpty() {
		return Insights{}, false
	}

	insights := Insights{
		Min:         s.Values[0],
		Max:         s.Values[0],
		Mean:        stat.Mean(s.Values, nil),
		SampleCount: s.Len(),
	}
	for _, v := range s.Values {
		if v < insights.Min {
			insights.Min = v
		}
		if v > insights.Max {
			insights.Max = v
		}
	}
	insights.Latest, insights.LatestAt, _ = s.Latest()
	insights.PeakHour, insights.TroughHour = peakTroughHours(s)
	return insights, true
}

// peakTroughHours averages values by hour of day and returns the hours
// with the highest and lowest means. Hours with no samples are skipped.
func peakTroughHours(s Series) (peak, trough int) {
	var sums [24]float64
	var counts [24]int
	for i, ts := range s.Timestamps {
		h := ts.Hour()
		sums[h] += s.Values[i]
		counts[h]++
	}

	first := true
	var peakMean, troughMean float64
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		mean := sums[h] / float64(counts[h])
		if first {
			peak, trough = h, h
			peakMean, troughMean = mean, mean
			first = false
			continue
		}
		if mean > peakMean {
			peak, peakMean = h, mean
		}
		if mean < troughMean {
			trough, troughMean = h, mean
		}
	}
	return peak, trough
}
