package analysis

import (
	"math"
	"math/rand"
	"sort"
)

// ForestConfig holds the isolation forest parameters. The defaults
// mirror the dashboard's historical behavior: a 1% contamination rate
// and a fixed seed so repeated refits over the same series always
// produce the same flags.
type ForestConfig struct {
	Trees         int
	SubsampleSize int
	Contamination float64
	Seed          int64
}

// DefaultForestConfig returns the standard isolation forest parameters.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:         100,
		SubsampleSize: 256,
		Contamination: 0.01,
		Seed:          42,
	}
}

// ForestResult holds per-point anomaly scores in [0, 1] (higher means
// more isolated) and the flags for the top contamination quantile.
type ForestResult struct {
	Scores []float64
	Flags  []bool
}

// FlagCount returns the number of flagged points.
func (r ForestResult) FlagCount() int {
	count := 0
	for _, f := range r.Flags {
		if f {
			count++
		}
	}
	return count
}

// isoNode is a node in an isolation tree. Leaves have size > 0.
type isoNode struct {
	split       float64
	left, right *isoNode
	size        int
}

// DetectForestAnomalies fits an isolation forest on the value series
// and flags the ceil(contamination * n) most isolated points. The model
// is refit from scratch on every call. A flat series (no score spread)
// flags nothing.
func DetectForestAnomalies(values []float64, cfg ForestConfig) ForestResult {
	n := len(values)
	if n == 0 {
		return ForestResult{}
	}
	if cfg.Trees <= 0 || cfg.SubsampleSize <= 0 || cfg.Contamination <= 0 || cfg.Contamination > 0.5 {
		cfg = DefaultForestConfig()
	}

	sampleSize := cfg.SubsampleSize
	if sampleSize > n {
		sampleSize = n
	}
	heightLimit := int(math.Ceil(math.Log2(float64(sampleSize) + 1)))

	rng := rand.New(rand.NewSource(cfg.Seed))

	pathSums := make([]float64, n)
	sample := make([]float64, sampleSize)
	for t := 0; t < cfg.Trees; t++ {
		for i := range sample {
			sample[i] = values[rng.Intn(n)]
		}
		tree := buildIsoTree(sample, 0, heightLimit, rng)
		for i, v := range values {
			pathSums[i] += pathLength(tree, v, 0)
		}
	}

	norm := avgPathLength(sampleSize)
	result := ForestResult{
		Scores: make([]float64, n),
		Flags:  make([]bool, n),
	}
	minScore, maxScore := math.Inf(1), math.Inf(-1)
	for i := range values {
		avg := pathSums[i] / float64(cfg.Trees)
		score := math.Exp2(-avg / norm)
		result.Scores[i] = score
		minScore = math.Min(minScore, score)
		maxScore = math.Max(maxScore, score)
	}

	// No spread means the forest could not isolate anything.
	if maxScore-minScore < 1e-12 {
		return result
	}

	flagged := int(math.Ceil(cfg.Contamination * float64(n)))
	if flagged > n {
		flagged = n
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return result.Scores[order[a]] > result.Scores[order[b]]
	})
	for _, idx := range order[:flagged] {
		result.Flags[idx] = true
	}
	return result
}

func buildIsoTree(sample []float64, depth, heightLimit int, rng *rand.Rand) *isoNode {
	if depth >= heightLimit || len(sample) <= 1 {
		return &isoNode{size: len(sample)}
	}

	lo, hi := sample[0], sample[0]
	for _, v := range sample[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return &isoNode{size: len(sample)}
	}

	split := lo + rng.Float64()*(hi-lo)
	var left, right []float64
	for _, v := range sample {
		if v < split {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}
	return &isoNode{
		split: split,
		left:  buildIsoTree(left, depth+1, heightLimit, rng),
		right: buildIsoTree(right, depth+1, heightLimit, rng),
	}
}

func pathLength(node *isoNode, v float64, depth int) float64 {
	if node.left == nil {
		return float64(depth) + avgPathLength(node.size)
	}
	if v < node.split {
		return pathLength(node.left, v, depth+1)
	}
	return pathLength(node.right, v, depth+1)
}

// avgPathLength is c(n), the expected path length of an unsuccessful
// BST search over n points, used to normalize isolation depths.
func avgPathLength(n int) float64 {
	if n <= 1 {
		return 0
	}
	h := math.Log(float64(n-1)) + 0.5772156649015329
	return 2*h - 2*float64(n-1)/float64(n)
}
