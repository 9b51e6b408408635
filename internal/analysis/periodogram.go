package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// PeriodogramResult holds the magnitude spectrum of a series. Frequency
// is expressed in cycles per sample, so with one-minute sampling a
// frequency of 1/1440 is a 24-hour cycle.
type PeriodogramResult struct {
	Frequencies []float64
	Power       []float64
}

// Periodogram computes the magnitude of the real FFT of the demeaned
// series. All magnitudes are non-negative. An empty series yields an
// empty result.
func Periodogram(values []float64) PeriodogramResult {
	n := len(values)
	if n == 0 {
		return PeriodogramResult{}
	}

	mean := stat.Mean(values, nil)
	demeaned := make([]float64, n)
	for i, v := range values {
		demeaned[i] = v - mean
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, demeaned)

	result := PeriodogramResult{
		Frequencies: make([]float64, len(coeffs)),
		Power:       make([]float64, len(coeffs)),
	}
	for i, c := range coeffs {
		result.Frequencies[i] = fft.Freq(i)
		result.Power[i] = cmplx.Abs(c)
	}
	return result
}

// DominantPeriod returns the period, in samples, of the strongest
// non-zero frequency bin. The zero-frequency bin is skipped since the
// series is demeaned. ok is false when the series is too short to have
// a non-zero bin or when the spectrum is flat at zero (constant input).
func (p PeriodogramResult) DominantPeriod() (samples float64, ok bool) {
	best := -1
	var bestPower float64
	for i := 1; i < len(p.Power); i++ {
		if p.Power[i] > bestPower {
			bestPower = p.Power[i]
			best = i
		}
	}
	if best == -1 || bestPower == 0 || p.Frequencies[best] == 0 {
		return 0, false
	}
	return 1 / p.Frequencies[best], true
}
