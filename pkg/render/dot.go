package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/linkrank/linkrank/pkg/graph"
	"github.com/linkrank/linkrank/pkg/rank"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Ranks scales and shades nodes by rank when non-nil. Pages absent
	// from the distribution render at the minimum size.
	Ranks rank.Distribution

	// Detailed includes the rank value in node labels.
	// When false, only the page name is shown.
	Detailed bool
}

// Node sizing bounds in inches. Ranks are mapped linearly between the
// smallest and largest rank in the distribution.
const (
	minNodeWidth = 0.9
	maxNodeWidth = 2.4
)

// ToDOT converts a link graph to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered with [RenderSVG]
// or processed by external Graphviz tools.
//
// When opts.Ranks is set, nodes grow and darken with rank so the highest
// ranked pages dominate the diagram.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	lo, hi := rankBounds(opts.Ranks)
	for i := 0; i < g.Len(); i++ {
		name := g.Page(i)
		attrs := fmtAttrs(name, opts, lo, hi)
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := 0; i < g.Len(); i++ {
		from := g.Page(i)
		for _, j := range g.Links(i) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", from, g.Page(j))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func rankBounds(ranks rank.Distribution) (lo, hi float64) {
	first := true
	for _, r := range ranks {
		if first || r < lo {
			lo = r
		}
		if first || r > hi {
			hi = r
		}
		first = false
	}
	return lo, hi
}

func fmtAttrs(name string, opts Options, lo, hi float64) []string {
	label := name
	r, ranked := opts.Ranks[name]
	if opts.Detailed && ranked {
		label = fmt.Sprintf("%s\n%.4f", name, r)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}

	if !ranked {
		return attrs
	}

	// Normalize rank into [0,1] over the distribution's range. A uniform
	// distribution maps everything to the midpoint.
	t := 0.5
	if hi > lo {
		t = (r - lo) / (hi - lo)
	}

	width := minNodeWidth + t*(maxNodeWidth-minNodeWidth)
	attrs = append(attrs,
		fmt.Sprintf("width=%.2f", width),
		fmt.Sprintf("fillcolor=\"0.58 %.2f 1.0\"", 0.1+0.5*t),
	)
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
