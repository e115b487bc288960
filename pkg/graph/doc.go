// Package graph implements the link-graph model the PageRank estimators
// operate over.
//
// A [Graph] represents a corpus of interlinked pages as a directed graph:
// each node is a page, each edge "page A links to page B". The page
// universe is fixed at construction time and pages are addressed by dense
// integer indices internally, so the estimators' inner loops never hash
// page names.
//
// Invariants enforced at construction:
//   - the universe is non-empty
//   - no page links to itself
//   - every link target is itself a member of the universe
//
// The package also defines the canonical JSON document format for graphs
// (see [Document]) used by the CLI for crawl/rank round trips and by the
// HTTP API.
package graph
