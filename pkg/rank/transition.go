package rank

import (
	"github.com/linkrank/linkrank/pkg/errors"
	"github.com/linkrank/linkrank/pkg/graph"
)

// Transition returns the one-step probability distribution over the next
// page a random surfer visits from the given page.
//
// For a sink (no outgoing links) the surfer teleports: every page in the
// universe gets probability 1/N. Otherwise every page gets the base
// teleport mass (1-damping)/N and each linked page an additional
// damping/k share, where k is the page's out-degree.
//
// Transition is a pure function of its inputs. It returns
// errors.ErrCodeInvalidDamping for a damping factor outside (0, 1) and
// errors.ErrCodeUnknownPage when the page is not in the universe.
func Transition(g *graph.Graph, page string, damping float64) (Distribution, error) {
	if damping <= 0 || damping >= 1 {
		return nil, errors.New(errors.ErrCodeInvalidDamping, "damping factor %v outside (0, 1)", damping)
	}
	i, err := g.Index(page)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnknownPage, err, "transition from %q", page)
	}

	n := g.Len()
	weights := make([]float64, n)
	transitionWeights(g, i, damping, weights)

	dist := make(Distribution, n)
	for j, w := range weights {
		dist[g.Page(j)] = w
	}
	return dist, nil
}

// transitionWeights fills weights with the one-step transition
// probabilities out of page i, in index space. len(weights) must equal
// g.Len(). This is the form the sampling walk consumes; [Transition]
// translates it to page names.
func transitionWeights(g *graph.Graph, i int, damping float64, weights []float64) {
	n := float64(g.Len())

	if g.IsSink(i) {
		uniform := 1 / n
		for j := range weights {
			weights[j] = uniform
		}
		return
	}

	base := (1 - damping) / n
	for j := range weights {
		weights[j] = base
	}
	share := damping / float64(g.OutDegree(i))
	for _, j := range g.Links(i) {
		weights[j] += share
	}
}
