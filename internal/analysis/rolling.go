package analysis

import "math"

// DefaultRollingWindow is the smoothing window, in samples, used by the
// daily pattern view when the client does not specify one.
const DefaultRollingWindow = 60

// RollingMean computes a trailing moving average over the given window
// size in samples. The window is clamped at the start of the series, so
// the output always has the same length as the input: position i
// averages values[max(0, i-window+1) .. i].
func RollingMean(values []float64, window int) []float64 {
	if len(values) == 0 {
		return nil
	}
	if window < 1 {
		window = 1
	}

	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// RollingStd computes the trailing sample standard deviation over the
// given window size, with the same clamped-window policy as
// RollingMean. Windows holding fewer than two samples yield zero.
func RollingStd(values []float64, window int) []float64 {
	if len(values) == 0 {
		return nil
	}
	if window < 1 {
		window = 1
	}

	out := make([]float64, len(values))
	for i := range values {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		n := i - lo + 1
		if n < 2 {
			out[i] = 0
			continue
		}

		var mean float64
		for _, v := range values[lo : i+1] {
			mean += v
		}
		mean /= float64(n)

		var ss float64
		for _, v := range values[lo : i+1] {
			d := v - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(n-1))
	}
	return out
}
