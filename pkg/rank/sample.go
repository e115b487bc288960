package rank

import (
	"sort"

	"github.com/linkrank/linkrank/pkg/graph"
)

// Sample estimates PageRank by simulating a single random walk of
// opts.Samples steps and normalizing per-page visit counts.
//
// The first page is chosen uniformly at random; each subsequent page is
// drawn from the transition distribution of the current page. The walk
// is memoryless: each step depends only on the current page. The result
// is stochastic and converges to the [Iterate] fixed point as the sample
// count grows.
func Sample(g *graph.Graph, opts Options) (Distribution, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	n := g.Len()
	counts := make([]int, n)
	weights := make([]float64, n)
	cumulative := make([]float64, n)

	current := opts.Rand.Intn(n)
	for step := 0; step < opts.Samples; step++ {
		counts[current]++

		if g.IsSink(current) {
			// Uniform teleport; no need for the weight table.
			current = opts.Rand.Intn(n)
			continue
		}

		transitionWeights(g, current, opts.Damping, weights)
		current = draw(opts.Rand.Float64(), weights, cumulative)
	}

	total := float64(opts.Samples)
	dist := make(Distribution, n)
	for i, c := range counts {
		dist[g.Page(i)] = float64(c) / total
	}
	return dist, nil
}

// draw picks an index from a weight table via cumulative-distribution
// binary search. r must be in [0, 1); cumulative is scratch space of the
// same length as weights.
func draw(r float64, weights, cumulative []float64) int {
	var sum float64
	for i, w := range weights {
		sum += w
		cumulative[i] = sum
	}
	// sum is 1.0 up to rounding; scale r so the last bucket is reachable
	// even when the cumulative total falls slightly short of 1.
	i := sort.SearchFloat64s(cumulative, r*sum)
	if i >= len(cumulative) {
		i = len(cumulative) - 1
	}
	return i
}
