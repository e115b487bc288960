// Package pipeline provides the crawl → rank pipeline for linkrank.
//
// This package implements the orchestration shared by the CLI and the
// HTTP API: build (or load) a link graph, run both PageRank estimators
// over it, and report stats. Centralizing this logic keeps behavior
// consistent across entry points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Crawl: parse a corpus directory into a link graph (cacheable,
//     keyed by a fingerprint of the corpus contents)
//  2. Rank: run the sampling and iterative estimators. The iterative
//     result is deterministic and cacheable by graph hash + parameters;
//     the sampled result is a fresh draw every run.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Dir:  "corpus",
//	    Rank: rank.DefaultOptions(),
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Iterated.Sorted())
package pipeline

import (
	"time"

	"github.com/linkrank/linkrank/pkg/errors"
	"github.com/linkrank/linkrank/pkg/graph"
	"github.com/linkrank/linkrank/pkg/rank"
)

// DefaultCacheTTL is how long cached crawl and rank entries stay valid.
const DefaultCacheTTL = 24 * time.Hour

// Options configures one pipeline execution.
type Options struct {
	// Dir is the corpus directory to crawl. Ignored when Graph is set.
	Dir string

	// Graph short-circuits the crawl stage with a pre-built graph
	// (e.g. one posted to the HTTP API).
	Graph *graph.Graph

	// Rank holds the estimator parameters.
	Rank rank.Options

	// Refresh bypasses the cache for both stages.
	Refresh bool

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration
}

// ValidateAndSetDefaults checks the options and fills optional fields.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Dir == "" && o.Graph == nil {
		return errors.New(errors.ErrCodeInvalidInput, "either a corpus directory or a graph is required")
	}
	if err := o.Rank.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	return nil
}

// Stats captures timing and size information for one execution.
type Stats struct {
	CrawlTime   time.Duration `json:"crawl_time"`
	SampleTime  time.Duration `json:"sample_time"`
	IterateTime time.Duration `json:"iterate_time"`
	Passes      int           `json:"passes"` // 0 when the iterated result came from cache
	NodeCount   int           `json:"node_count"`
	EdgeCount   int           `json:"edge_count"`
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	CrawlHit bool `json:"crawl_hit"`
	RankHit  bool `json:"rank_hit"`
}

// Result is the outcome of one pipeline execution.
type Result struct {
	// RunID uniquely identifies this execution in logs and API responses.
	RunID string

	// Graph is the link graph the estimators ran over.
	Graph *graph.Graph

	// GraphHash is the SHA-256 of the graph's canonical JSON form,
	// used for rank cache keys.
	GraphHash string

	// Sampled is the random-walk estimate, Iterated the fixed-point one.
	Sampled  rank.Distribution
	Iterated rank.Distribution

	Stats     Stats
	CacheInfo CacheInfo
}
