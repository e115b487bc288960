// Package render provides visualization rendering for link graphs.
//
// # Overview
//
// This package turns a ranked link graph into a node-link diagram: pages
// appear as boxes connected by arrows, and when a rank distribution is
// supplied, each node is scaled and shaded by its rank so the important
// pages stand out.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := render.ToDOT(g, render.Options{Ranks: ranks})
//	svg, err := render.RenderSVG(dot)
//
// The DOT source can also be saved as-is and processed with external
// Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is required.
package render
