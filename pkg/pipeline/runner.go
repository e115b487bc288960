package pipeline

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/linkrank/linkrank/pkg/cache"
	"github.com/linkrank/linkrank/pkg/corpus"
	"github.com/linkrank/linkrank/pkg/graph"
	"github.com/linkrank/linkrank/pkg/observability"
	"github.com/linkrank/linkrank/pkg/rank"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete crawl → rank pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Crawl (or adopt the supplied graph)
	crawlStart := time.Now()
	g := opts.Graph
	if g == nil {
		var hit bool
		var err error
		g, hit, err = r.Crawl(ctx, opts.Dir, opts)
		if err != nil {
			return nil, err
		}
		result.CacheInfo.CrawlHit = hit
	}
	result.Graph = g
	result.Stats.CrawlTime = time.Since(crawlStart)
	result.Stats.NodeCount = g.Len()
	result.Stats.EdgeCount = g.EdgeCount()

	// Graph hash for rank cache keys and API responses
	if data, err := graph.MarshalGraph(g); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Info("built link graph",
		"pages", result.Stats.NodeCount,
		"links", result.Stats.EdgeCount,
		"duration", result.Stats.CrawlTime,
		"cached", result.CacheInfo.CrawlHit)

	// Stage 2: Iterate (deterministic, cacheable)
	iterStart := time.Now()
	iterated, passes, hit, err := r.iterate(ctx, g, result.GraphHash, opts)
	if err != nil {
		return nil, err
	}
	result.Iterated = iterated
	result.Stats.Passes = passes
	result.Stats.IterateTime = time.Since(iterStart)
	result.CacheInfo.RankHit = hit

	r.Logger.Info("iterated to fixed point",
		"passes", passes,
		"duration", result.Stats.IterateTime,
		"cached", hit)

	// Stage 3: Sample (stochastic, never cached)
	sampleStart := time.Now()
	observability.Rank().OnSampleStart(ctx, g.Len(), opts.Rank.Samples)
	sampled, err := rank.Sample(g, opts.Rank)
	observability.Rank().OnSampleComplete(ctx, opts.Rank.Samples, time.Since(sampleStart), err)
	if err != nil {
		return nil, err
	}
	result.Sampled = sampled
	result.Stats.SampleTime = time.Since(sampleStart)

	r.Logger.Info("sampled random walk",
		"steps", opts.Rank.Samples,
		"duration", result.Stats.SampleTime)

	return result, nil
}

// Crawl builds the link graph for a corpus directory, consulting the
// cache first. The cache key is a fingerprint of the corpus contents, so
// editing any page invalidates the entry. Reports whether the graph came
// from cache.
func (r *Runner) Crawl(ctx context.Context, dir string, opts Options) (*graph.Graph, bool, error) {
	observability.Crawl().OnCrawlStart(ctx, dir)
	start := time.Now()

	g, hit, err := r.crawlWithCache(ctx, dir, opts)

	nodes, edges := 0, 0
	if g != nil {
		nodes, edges = g.Len(), g.EdgeCount()
	}
	observability.Crawl().OnCrawlComplete(ctx, dir, nodes, edges, time.Since(start), err)
	return g, hit, err
}

func (r *Runner) crawlWithCache(ctx context.Context, dir string, opts Options) (*graph.Graph, bool, error) {
	fingerprint, err := corpusFingerprint(dir)
	if err != nil {
		// Let the crawler produce its structured error for a bad path.
		g, loadErr := corpus.Load(dir)
		return g, false, loadErr
	}

	key := r.Keyer.CrawlKey(fingerprint)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if g, err := graph.ReadGraph(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "crawl")
				return g, true, nil
			}
			// Corrupt entry; fall through to a fresh crawl.
			_ = r.Cache.Delete(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, "crawl")
		}
	}

	g, err := corpus.Load(dir)
	if err != nil {
		return nil, false, err
	}

	if data, err := graph.MarshalGraph(g); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
			r.Logger.Warn("crawl cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "crawl", len(data))
		}
	}
	return g, false, nil
}

// rankEntry is the cached form of an iterated distribution.
type rankEntry struct {
	Ranks rank.Distribution `json:"ranks"`
}

func (r *Runner) iterate(ctx context.Context, g *graph.Graph, graphHash string, opts Options) (rank.Distribution, int, bool, error) {
	key := r.Keyer.RankKey(graphHash, cache.RankKeyOpts{
		Damping:   opts.Rank.Damping,
		Threshold: opts.Rank.Threshold,
	})

	if !opts.Refresh && graphHash != "" {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var entry rankEntry
			if err := json.Unmarshal(data, &entry); err == nil && len(entry.Ranks) == g.Len() {
				observability.Cache().OnCacheHit(ctx, "rank")
				return entry.Ranks, 0, true, nil
			}
			_ = r.Cache.Delete(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, "rank")
		}
	}

	start := time.Now()
	observability.Rank().OnIterateStart(ctx, g.Len())
	dist, passes, err := rank.IterateN(g, opts.Rank)
	observability.Rank().OnIterateComplete(ctx, passes, time.Since(start), err)
	if err != nil {
		return nil, passes, false, err
	}

	if graphHash != "" {
		if data, err := json.Marshal(rankEntry{Ranks: dist}); err == nil {
			if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
				r.Logger.Warn("rank cache write failed", "err", err)
			} else {
				observability.Cache().OnCacheSet(ctx, "rank", len(data))
			}
		}
	}
	return dist, passes, false, nil
}

// corpusFingerprint hashes the names and contents of every .html file in
// dir, in sorted order, producing a stable identity for the corpus.
func corpusFingerprint(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		io.WriteString(h, name)
		h.Write([]byte{0})
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", name, err)
		}
		h.Write(data)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
