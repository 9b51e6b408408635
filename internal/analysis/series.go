// Package analysis implements the statistical transforms behind the
// dashboard views: rolling statistics, an FFT periodogram, two anomaly
// detectors, the Aroon trend-reversal indicator, and summary insights.
// Every function is a pure transform of a Series; nothing is cached
// between invocations.
package analysis

import "time"

// Series is an ordered residency series for a single system. Timestamps
// and Values are parallel slices; timestamps are non-decreasing.
type Series struct {
	Timestamps []time.Time
	Values     []float64
}

func (s Series) Len() int {
	return len(s.Values)
}

func (s Series) IsEmpty() bool {
	return len(s.Values) == 0
}

// Latest returns the most recent value and its timestamp.
func (s Series) Latest() (float64, time.Time, bool) {
	if s.IsEmpty() {
		return 0, time.Time{}, false
	}
	last := s.Len() - 1
	return s.Values[last], s.Timestamps[last], true
}

// Regularize resamples the series onto a fixed grid of the given step,
// spanning the first to the last timestamp. When multiple samples fall
// into one slot the last one wins. Interior gaps are filled by linear
// interpolation between the surrounding known slots; leading and
// trailing gaps take the nearest known value.
func Regularize(s Series, step time.Duration) Series {
	if s.Len() < 2 || step <= 0 {
		return s
	}

	start := s.Timestamps[0].Truncate(step)
	end := s.Timestamps[s.Len()-1]
	slots := int(end.Sub(start)/step) + 1

	values := make([]float64, slots)
	known := make([]bool, slots)
	for i := range s.Values {
		slot := int(s.Timestamps[i].Sub(start) / step)
		if slot < 0 {
			slot = 0
		}
		if slot >= slots {
			slot = slots - 1
		}
		values[slot] = s.Values[i]
		known[slot] = true
	}

	interpolate(values, known)

	timestamps := make([]time.Time, slots)
	for i := range timestamps {
		timestamps[i] = start.Add(time.Duration(i) * step)
	}
	return Series{Timestamps: timestamps, Values: values}
}

func interpolate(values []float64, known []bool) {
	n := len(values)

	prev := -1
	for i := 0; i < n; i++ {
		if !known[i] {
			continue
		}
		switch {
		case prev == -1:
			// Leading gap: backfill with the first known value.
			for j := 0; j < i; j++ {
				values[j] = values[i]
			}
		case i-prev > 1:
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				frac := float64(j-prev) / span
				values[j] = values[prev] + frac*(values[i]-values[prev])
			}
		}
		prev = i
	}

	// Trailing gap: carry the last known value forward.
	if prev != -1 {
		for j := prev + 1; j < n; j++ {
			values[j] = values[prev]
		}
	}
}
