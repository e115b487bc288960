package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when several projects share one redis instance and their
// corpora must not collide in the key space.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "docs-site:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// CrawlKey generates a prefixed key for a crawled graph.
func (k *ScopedKeyer) CrawlKey(fingerprint string) string {
	return k.prefix + k.inner.CrawlKey(fingerprint)
}

// RankKey generates a prefixed key for an iterated rank distribution.
func (k *ScopedKeyer) RankKey(graphHash string, opts RankKeyOpts) string {
	return k.prefix + k.inner.RankKey(graphHash, opts)
}
