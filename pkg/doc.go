// Package pkg provides the core libraries for linkrank PageRank estimation.
//
// # Overview
//
// Linkrank turns a directory of HTML pages into a link graph and estimates
// each page's importance with the PageRank random-surfer model. The pkg
// directory is organized into these areas:
//
//  1. [graph] - The immutable link graph with dense page indices
//  2. [corpus] - HTML crawling and anchor extraction
//  3. [rank] - The transition model and both PageRank estimators
//  4. [pipeline] - Orchestration (crawl → rank) with caching
//  5. [render] - Graphviz DOT/SVG diagrams scaled by rank
//  6. [cache] / [observability] / [errors] / [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow through linkrank:
//
//	HTML corpus directory
//	         ↓
//	    [corpus] package (extract anchors, prune external links)
//	         ↓
//	    [graph] package (fixed page universe, dense indices)
//	         ↓
//	    [rank] package (sampling + iterative estimators)
//	         ↓
//	    tables / JSON / DOT / HTTP responses
//
// # Quick Start
//
// Crawl a corpus and rank its pages:
//
//	import (
//	    "github.com/linkrank/linkrank/pkg/corpus"
//	    "github.com/linkrank/linkrank/pkg/rank"
//	)
//
//	g, _ := corpus.Load("corpus")
//	dist, _ := rank.Iterate(g, rank.DefaultOptions())
//	for _, e := range dist.Sorted() {
//	    fmt.Printf("%s: %.4f\n", e.Page, e.Rank)
//	}
//
// Or run the full cached pipeline the CLI and API use:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Dir:  "corpus",
//	    Rank: rank.DefaultOptions(),
//	})
//
// # Main Packages
//
// [graph] - Immutable directed link graph over a fixed, sorted page
// universe. Pages get dense integer indices at construction so the
// estimators never hash page names in their hot loops.
//
// [corpus] - Crawls a directory of .html files, extracts anchor hrefs
// with golang.org/x/net/html, and prunes self-references and links that
// leave the corpus.
//
// [rank] - The damping-factor transition model and two estimators:
// Sample (random surfer walk) and Iterate (Jacobi fixed-point relaxation
// with convergence detection).
//
// [pipeline] - Crawl → rank orchestration with content-addressed caching
// of crawl results and iterated distributions.
//
// [render] - Node-link diagrams via Graphviz, with node size and shade
// scaled by rank.
//
// [cache] - Cache interface with file, Redis, and null backends plus
// deterministic key derivation.
//
// [observability] - Hook interfaces for instrumenting crawl, rank, and
// cache events.
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/rank/...   # Specific package
//
// [graph]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/graph
// [corpus]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/corpus
// [rank]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/rank
// [pipeline]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/render
// [cache]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/cache
// [observability]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/observability
// [errors]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/linkrank/linkrank/pkg/buildinfo
package pkg
