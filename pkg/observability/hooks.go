// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can
// register hooks at startup to receive events about crawling, ranking,
// and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRankHooks(&myRankHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Rank().OnIterateStart(ctx, nodeCount)
//	// ... iterate ...
//	observability.Rank().OnIterateComplete(ctx, passes, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Crawl Hooks
// =============================================================================

// CrawlHooks receives events from corpus crawling.
type CrawlHooks interface {
	// OnCrawlStart records the beginning of a corpus crawl.
	OnCrawlStart(ctx context.Context, dir string)

	// OnCrawlComplete records the end of a corpus crawl.
	OnCrawlComplete(ctx context.Context, dir string, nodeCount, edgeCount int, duration time.Duration, err error)
}

// =============================================================================
// Rank Hooks
// =============================================================================

// RankHooks receives events from the estimators.
type RankHooks interface {
	// Sampling events
	OnSampleStart(ctx context.Context, nodeCount, samples int)
	OnSampleComplete(ctx context.Context, samples int, duration time.Duration, err error)

	// Iteration events
	OnIterateStart(ctx context.Context, nodeCount int)
	OnIterateComplete(ctx context.Context, passes int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCrawlHooks is a no-op implementation of CrawlHooks.
type NoopCrawlHooks struct{}

func (NoopCrawlHooks) OnCrawlStart(context.Context, string) {}
func (NoopCrawlHooks) OnCrawlComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopRankHooks is a no-op implementation of RankHooks.
type NoopRankHooks struct{}

func (NoopRankHooks) OnSampleStart(context.Context, int, int)                     {}
func (NoopRankHooks) OnSampleComplete(context.Context, int, time.Duration, error) {}
func (NoopRankHooks) OnIterateStart(context.Context, int)                         {}
func (NoopRankHooks) OnIterateComplete(context.Context, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	crawlHooks CrawlHooks = NoopCrawlHooks{}
	rankHooks  RankHooks  = NoopRankHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetCrawlHooks registers custom crawl hooks.
// This should be called once at application startup before any crawling.
func SetCrawlHooks(h CrawlHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		crawlHooks = h
	}
}

// SetRankHooks registers custom rank hooks.
// This should be called once at application startup before any ranking.
func SetRankHooks(h RankHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		rankHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Crawl returns the registered crawl hooks.
func Crawl() CrawlHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return crawlHooks
}

// Rank returns the registered rank hooks.
func Rank() RankHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return rankHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	crawlHooks = NoopCrawlHooks{}
	rankHooks = NoopRankHooks{}
	cacheHooks = NoopCacheHooks{}
}
