// Package corpus builds link graphs from directories of HTML pages.
//
// A corpus is a flat directory where each .html file is one page and an
// anchor href naming another file in the directory is a link. This is
// the thin I/O adapter in front of the estimators: it reads files,
// extracts anchors, prunes references that leave the corpus, and hands a
// self-contained [graph.Graph] to the core.
package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/linkrank/linkrank/pkg/errors"
	"github.com/linkrank/linkrank/pkg/graph"
)

// Load parses a directory of HTML pages and builds the link graph.
//
// Only files with an .html extension count as pages; everything else in
// the directory is ignored. Links to the page itself and links whose
// target is not a page of the corpus are dropped before the graph is
// constructed, so the result always satisfies the graph invariants.
//
// Returns errors.ErrCodeInvalidPath if the directory cannot be read and
// errors.ErrCodeMalformedGraph if the directory contains no pages.
func Load(dir string) (*graph.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read corpus %s", dir)
	}

	raw := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		links, err := parseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		raw[entry.Name()] = links
	}

	if len(raw) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedGraph, "no .html pages in %s", dir)
	}

	// Keep only links that point at other pages of the corpus.
	adjacency := make(map[string][]string, len(raw))
	for page, links := range raw {
		kept := make([]string, 0, len(links))
		for _, target := range links {
			if target == page {
				continue
			}
			if _, ok := raw[target]; ok {
				kept = append(kept, target)
			}
		}
		adjacency[page] = kept
	}

	g, err := graph.New(adjacency)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedGraph, err, "build graph from %s", dir)
	}
	return g, nil
}

func parseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open page")
	}
	defer f.Close()

	links, err := ExtractLinks(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "parse %s", filepath.Base(path))
	}
	return links, nil
}
