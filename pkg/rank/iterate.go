package rank

import (
	"math"

	"github.com/linkrank/linkrank/pkg/errors"
	"github.com/linkrank/linkrank/pkg/graph"
)

// Iterate estimates PageRank by synchronous fixed-point relaxation.
//
// Every page starts at rank 1/N. Each pass recomputes every page's rank
// from a stable snapshot of the previous pass (Jacobi update, so the
// result is independent of page order):
//
//	rank(p) = (1-d)/N + d * Σ contributions
//
// where a linker contributes rank/out-degree to each page it links to,
// and a sink's rank is redistributed uniformly across the universe,
// mirroring the teleport rule of [Transition]. A pass converges when no
// page moved by more than opts.Threshold.
//
// The output is fully deterministic for a given graph and options.
// Returns errors.ErrCodeConvergence if opts.MaxPasses passes complete
// without settling.
func Iterate(g *graph.Graph, opts Options) (Distribution, error) {
	dist, _, err := IterateN(g, opts)
	return dist, err
}

// IterateN is [Iterate] and additionally reports the number of passes it
// took to converge.
func IterateN(g *graph.Graph, opts Options) (Distribution, int, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}

	n := g.Len()
	fn := float64(n)
	base := (1 - opts.Damping) / fn

	ranks := make([]float64, n)
	next := make([]float64, n)
	for i := range ranks {
		ranks[i] = 1 / fn
	}

	for pass := 1; pass <= opts.MaxPasses; pass++ {
		// Scatter each page's rank to its link targets; sinks pool their
		// mass for uniform redistribution.
		for i := range next {
			next[i] = 0
		}
		var sinkMass float64
		for i := 0; i < n; i++ {
			if g.IsSink(i) {
				sinkMass += ranks[i]
				continue
			}
			share := ranks[i] / float64(g.OutDegree(i))
			for _, j := range g.Links(i) {
				next[j] += share
			}
		}

		sinkShare := sinkMass / fn
		converged := true
		for i := 0; i < n; i++ {
			next[i] = base + opts.Damping*(next[i]+sinkShare)
			if math.Abs(next[i]-ranks[i]) > opts.Threshold {
				converged = false
			}
		}
		ranks, next = next, ranks

		if converged {
			dist := make(Distribution, n)
			for i, r := range ranks {
				dist[g.Page(i)] = r
			}
			return dist, pass, nil
		}
	}

	return nil, opts.MaxPasses, errors.New(errors.ErrCodeConvergence,
		"no fixed point within %d passes (threshold %v)", opts.MaxPasses, opts.Threshold)
}
