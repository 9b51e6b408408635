package analysis

// DefaultAroonWindow is one day of one-minute samples.
const DefaultAroonWindow = 1440

// CrossDirection describes which way an Aroon crossover resolved.
type CrossDirection string

const (
	CrossUp   CrossDirection = "up"
	CrossDown CrossDirection = "down"
)

// Crossover marks an index (relative to AroonResult.Offset) where the
// Aroon Up and Down lines crossed.
type Crossover struct {
	Index     int
	Direction CrossDirection
}

// AroonResult holds the Aroon Up and Down lines. Both lines are defined
// from series index Offset on (the first index with a full lookback
// window), and are bounded to [0, 100].
type AroonResult struct {
	Offset int
	Up     []float64
	Down   []float64
}

// Aroon computes the Aroon Up/Down indicator over a trailing lookback
// of window samples:
//
//	Up   = 100 * (window - periodsSinceWindowHigh) / window
//	Down = 100 * (window - periodsSinceWindowLow) / window
//
// Ties resolve to the oldest occurrence. Series shorter than the window
// produce an empty result.
func Aroon(values []float64, window int) AroonResult {
	if window < 1 || len(values) < window {
		return AroonResult{}
	}

	count := len(values) - window + 1
	result := AroonResult{
		Offset: window - 1,
		Up:     make([]float64, count),
		Down:   make([]float64, count),
	}
	for i := window - 1; i < len(values); i++ {
		idxHigh, idxLow := 0, 0
		w := values[i-window+1 : i+1]
		for j, v := range w {
			if v > w[idxHigh] {
				idxHigh = j
			}
			if v < w[idxLow] {
				idxLow = j
			}
		}
		sinceHigh := window - 1 - idxHigh
		sinceLow := window - 1 - idxLow
		result.Up[i-window+1] = 100 * float64(window-sinceHigh) / float64(window)
		result.Down[i-window+1] = 100 * float64(window-sinceLow) / float64(window)
	}
	return result
}

// Crossovers returns every index where the ordering of the Up and Down
// lines flips, with the direction the Up line resolved to.
func (r AroonResult) Crossovers() []Crossover {
	var crossings []Crossover
	for i := 1; i < len(r.Up); i++ {
		prev := r.Up[i-1] - r.Down[i-1]
		cur := r.Up[i] - r.Down[i]
		switch {
		case prev <= 0 && cur > 0:
			crossings = append(crossings, Crossover{Index: i, Direction: CrossUp})
		case prev >= 0 && cur < 0:
			crossings = append(crossings, Crossover{Index: i, Direction: CrossDown})
		}
	}
	return crossings
}
