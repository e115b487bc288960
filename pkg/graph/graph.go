package graph

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrEmptyUniverse is returned by [New] when the adjacency map has no
	// pages. Every computation divides by the universe size, so an empty
	// graph is never usable.
	ErrEmptyUniverse = errors.New("graph has no pages")

	// ErrDanglingLink is returned by [New] when a link set references a
	// page that is not itself a key of the adjacency map. Callers are
	// expected to prune dangling targets before building the graph.
	ErrDanglingLink = errors.New("link target outside the page universe")

	// ErrUnknownPage is returned by lookups that name a page outside the
	// universe.
	ErrUnknownPage = errors.New("unknown page")
)

// Graph is an immutable directed link graph over a fixed page universe.
//
// Pages are assigned dense integer indices at construction time, and all
// adjacency is stored as index slices. Estimators work with indices in
// their hot loops and translate back to names only when producing results,
// so no hashing happens per iteration step.
//
// The zero value is not usable - use [New]. Graph is safe for concurrent
// readers because nothing mutates it after construction.
type Graph struct {
	pages []string       // page names, sorted ascending
	index map[string]int // name -> position in pages
	links [][]int        // outgoing targets per page, sorted ascending
}

// New builds a Graph from an adjacency map of page name to outgoing link
// targets.
//
// Self-references are dropped (a page never links to itself), and
// duplicate targets collapse to one edge. Every target must itself be a
// key of the map: New returns ErrDanglingLink otherwise, and
// ErrEmptyUniverse for an empty map. The input map is not retained.
func New(adjacency map[string][]string) (*Graph, error) {
	if len(adjacency) == 0 {
		return nil, ErrEmptyUniverse
	}

	pages := make([]string, 0, len(adjacency))
	for name := range adjacency {
		pages = append(pages, name)
	}
	sort.Strings(pages)

	index := make(map[string]int, len(pages))
	for i, name := range pages {
		index[name] = i
	}

	links := make([][]int, len(pages))
	for i, name := range pages {
		targets := adjacency[name]
		out := make([]int, 0, len(targets))
		for _, target := range targets {
			if target == name {
				continue
			}
			j, ok := index[target]
			if !ok {
				return nil, fmt.Errorf("page %q links to %q: %w", name, target, ErrDanglingLink)
			}
			out = append(out, j)
		}
		sort.Ints(out)
		out = slices.Compact(out)
		links[i] = out
	}

	return &Graph{pages: pages, index: index, links: links}, nil
}

// Len returns the number of pages in the universe.
func (g *Graph) Len() int { return len(g.pages) }

// Pages returns the page names in sorted order.
// The returned slice is a copy and may be modified freely.
func (g *Graph) Pages() []string { return slices.Clone(g.pages) }

// Page returns the name of the page at index i.
// It panics if i is out of range, matching slice semantics.
func (g *Graph) Page(i int) string { return g.pages[i] }

// Index returns the dense index of the named page.
// Returns ErrUnknownPage if the page is not in the universe.
func (g *Graph) Index(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownPage)
	}
	return i, nil
}

// Has reports whether the named page is in the universe.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// EdgeCount returns the total number of links in the graph.
func (g *Graph) EdgeCount() int {
	var n int
	for _, out := range g.links {
		n += len(out)
	}
	return n
}

// Links returns the sorted indices of pages that page i links to.
// The returned slice must be treated as read-only.
func (g *Graph) Links(i int) []int { return g.links[i] }

// OutDegree returns the number of outgoing links from page i.
func (g *Graph) OutDegree(i int) int { return len(g.links[i]) }

// IsSink reports whether page i has no outgoing links.
func (g *Graph) IsSink(i int) bool { return len(g.links[i]) == 0 }

// Adjacency reconstructs the name-keyed adjacency map the graph was built
// from, with sorted link slices. Useful for serialization and tests; the
// estimators never need it.
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.pages))
	for i, name := range g.pages {
		out := make([]string, len(g.links[i]))
		for k, j := range g.links[i] {
			out[k] = g.pages[j]
		}
		adj[name] = out
	}
	return adj
}
