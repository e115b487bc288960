// Package cache provides the byte cache used by the ranking pipeline.
//
// Two things live here: the [Cache] interface with its backends (null,
// file, redis) and the [Keyer] that derives namespaced cache keys from
// corpus fingerprints and estimator options. Crawled graphs and
// deterministic iteration results are cacheable; sampling results never
// are, since each run is intentionally a fresh draw.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// RankKeyOpts are the estimator parameters that participate in rank
// cache keys. Two runs with different parameters must never share an
// entry.
type RankKeyOpts struct {
	Damping   float64 `json:"damping"`
	Threshold float64 `json:"threshold"`
}

// Keyer derives cache keys. Implementations must be deterministic:
// equal inputs produce equal keys.
type Keyer interface {
	// CrawlKey returns the key for a crawled graph, derived from a
	// fingerprint of the corpus contents.
	CrawlKey(fingerprint string) string

	// RankKey returns the key for an iterated rank distribution,
	// derived from the graph hash and the estimator parameters.
	RankKey(graphHash string, opts RankKeyOpts) string
}

// DefaultKeyer is the standard key derivation: a namespace prefix plus a
// SHA-256 hash of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// CrawlKey generates a key for a crawled graph.
func (k *DefaultKeyer) CrawlKey(fingerprint string) string {
	return hashKey("crawl", fingerprint)
}

// RankKey generates a key for an iterated rank distribution.
func (k *DefaultKeyer) RankKey(graphHash string, opts RankKeyOpts) string {
	return hashKey("rank", graphHash, opts)
}
