// Package rank implements the two PageRank estimators.
//
// Both estimators consume an immutable [graph.Graph] and produce a
// [Distribution], a probability per page summing to 1.0 over the full
// page universe:
//
//   - [Sample] runs a long random walk under the damping-factor
//     random-surfer rule and tallies visitation frequency. Its output is
//     stochastic; inject a seeded rand via [Options.Rand] for
//     reproducible results.
//   - [Iterate] solves the PageRank fixed-point equation by synchronous
//     relaxation until every page's rank settles within
//     [Options.Threshold]. Its output is deterministic.
//
// As the sample count grows, the two converge to the same fixed point.
//
// The one-step surfer distribution is exposed separately as [Transition].
//
// # Usage
//
//	g, _ := graph.New(adjacency)
//	opts := rank.DefaultOptions()
//	sampled, err := rank.Sample(g, opts)
//	iterated, err := rank.Iterate(g, opts)
package rank

import (
	"math/rand"
	"time"

	"github.com/linkrank/linkrank/pkg/errors"
)

// Default estimator parameters.
const (
	// DefaultDamping is the probability that the random surfer follows an
	// outgoing link rather than teleporting to a uniformly random page.
	DefaultDamping = 0.85

	// DefaultSamples is the length of the random walk used by [Sample].
	DefaultSamples = 10000

	// DefaultThreshold is the maximum per-page rank delta at which a pass
	// of [Iterate] is considered settled.
	DefaultThreshold = 0.001

	// DefaultMaxPasses bounds [Iterate] so a degenerate graph or
	// threshold cannot hang the process.
	DefaultMaxPasses = 10000
)

// Options configures the estimators. Construct with [DefaultOptions] and
// override fields as needed; parameters are always passed explicitly,
// never read from process-wide state.
type Options struct {
	// Damping is the damping factor, in (0, 1).
	Damping float64

	// Samples is the number of steps in the sampling walk, > 0.
	Samples int

	// Threshold is the convergence threshold for iteration, > 0.
	Threshold float64

	// MaxPasses caps the iterative estimator. Zero or negative means
	// DefaultMaxPasses.
	MaxPasses int

	// Rand is the random source for the sampling walk. Nil means a
	// time-seeded source; set a fixed seed for reproducible tests.
	Rand *rand.Rand
}

// DefaultOptions returns Options populated with the reference parameters
// (damping 0.85, 10000 samples, threshold 0.001).
func DefaultOptions() Options {
	return Options{
		Damping:   DefaultDamping,
		Samples:   DefaultSamples,
		Threshold: DefaultThreshold,
		MaxPasses: DefaultMaxPasses,
	}
}

// ValidateAndSetDefaults checks option ranges and fills the optional
// fields. It rejects a damping factor outside (0, 1), a non-positive
// sample count, and a non-positive threshold; it fills MaxPasses and
// Rand when unset.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Damping <= 0 || o.Damping >= 1 {
		return errors.New(errors.ErrCodeInvalidDamping, "damping factor %v outside (0, 1)", o.Damping)
	}
	if o.Samples <= 0 {
		return errors.New(errors.ErrCodeInvalidSamples, "sample count %d must be positive", o.Samples)
	}
	if o.Threshold <= 0 {
		return errors.New(errors.ErrCodeInvalidThreshold, "convergence threshold %v must be positive", o.Threshold)
	}
	if o.MaxPasses <= 0 {
		o.MaxPasses = DefaultMaxPasses
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return nil
}
