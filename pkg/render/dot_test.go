package render

import (
	"strings"
	"testing"

	"github.com/linkrank/linkrank/pkg/graph"
	"github.com/linkrank/linkrank/pkg/rank"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {},
	})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("DOT should start with digraph header, got %q", dot[:20])
	}
	for _, want := range []string{
		`"1.html" [label="1.html"];`,
		`"3.html" [label="3.html"];`,
		`"1.html" -> "2.html";`,
		`"2.html" -> "3.html";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q", want)
		}
	}
	if strings.Contains(dot, `"3.html" ->`) {
		t.Error("sink page should have no outgoing edges")
	}
}

func TestToDOTRankScaling(t *testing.T) {
	ranks := rank.Distribution{"1.html": 0.2, "2.html": 0.5, "3.html": 0.3}
	dot := ToDOT(testGraph(t), Options{Ranks: ranks})

	// Highest-ranked page gets the maximum width, lowest the minimum.
	if !strings.Contains(dot, `"2.html" [label="2.html", width=2.40`) {
		t.Errorf("top page should render at max width:\n%s", dot)
	}
	if !strings.Contains(dot, `"1.html" [label="1.html", width=0.90`) {
		t.Errorf("bottom page should render at min width:\n%s", dot)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	ranks := rank.Distribution{"1.html": 0.25, "2.html": 0.5, "3.html": 0.25}
	dot := ToDOT(testGraph(t), Options{Ranks: ranks, Detailed: true})

	if !strings.Contains(dot, `label="2.html\n0.5000"`) {
		t.Errorf("detailed label should include the rank value:\n%s", dot)
	}
}

func TestToDOTUniformRanks(t *testing.T) {
	ranks := rank.Distribution{"1.html": 1.0 / 3, "2.html": 1.0 / 3, "3.html": 1.0 / 3}
	dot := ToDOT(testGraph(t), Options{Ranks: ranks})

	// All nodes sit at the midpoint width
	if got := strings.Count(dot, "width=1.65"); got != 3 {
		t.Errorf("uniform ranks should produce 3 midpoint widths, got %d:\n%s", got, dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?><svg width="8.5in" height="11in" viewBox="0.00 0.00 612.00 792.00">content</svg>`)
	got := string(normalizeViewBox(svg))

	if !strings.Contains(got, `viewBox="0 0 612.00 792.00"`) {
		t.Errorf("viewBox not normalized: %s", got)
	}
	if !strings.Contains(got, `width="612" height="792"`) {
		t.Errorf("dimensions not set from viewBox: %s", got)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	svg := []byte(`<svg>no viewbox</svg>`)
	if got := normalizeViewBox(svg); string(got) != string(svg) {
		t.Errorf("SVG without viewBox should pass through unchanged, got %s", got)
	}
}
