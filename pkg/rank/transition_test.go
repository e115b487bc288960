package rank

import (
	"math"
	"testing"

	"github.com/linkrank/linkrank/pkg/errors"
	"github.com/linkrank/linkrank/pkg/graph"
)

// mustGraph builds a graph or fails the test.
func mustGraph(t *testing.T, adjacency map[string][]string) *graph.Graph {
	t.Helper()
	g, err := graph.New(adjacency)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	return g
}

// corpus1 mirrors the classic four-page test corpus: 1 ↔ 2, 2 ↔ 3, 3 → 4.
func corpus1(t *testing.T) *graph.Graph {
	t.Helper()
	return mustGraph(t, map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html", "4.html"},
		"4.html": {},
	})
}

func TestTransition(t *testing.T) {
	g := corpus1(t)

	tests := []struct {
		name    string
		page    string
		damping float64
		want    map[string]float64
	}{
		{
			name:    "SinglyLinkedPage",
			page:    "1.html",
			damping: 0.85,
			want: map[string]float64{
				"1.html": 0.0375,
				"2.html": 0.8875, // 0.0375 base + 0.85 link mass
				"3.html": 0.0375,
				"4.html": 0.0375,
			},
		},
		{
			name:    "TwoLinks",
			page:    "2.html",
			damping: 0.85,
			want: map[string]float64{
				"1.html": 0.4625, // 0.0375 + 0.85/2
				"2.html": 0.0375,
				"3.html": 0.4625,
				"4.html": 0.0375,
			},
		},
		{
			name:    "SinkTeleportsUniformly",
			page:    "4.html",
			damping: 0.85,
			want: map[string]float64{
				"1.html": 0.25,
				"2.html": 0.25,
				"3.html": 0.25,
				"4.html": 0.25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, err := Transition(g, tt.page, tt.damping)
			if err != nil {
				t.Fatalf("Transition: %v", err)
			}
			if len(dist) != g.Len() {
				t.Errorf("distribution covers %d pages, want %d", len(dist), g.Len())
			}
			for page, want := range tt.want {
				if got := dist[page]; math.Abs(got-want) > 1e-9 {
					t.Errorf("dist[%s] = %v, want %v", page, got, want)
				}
			}
			if sum := dist.Sum(); math.Abs(sum-1) > 1e-9 {
				t.Errorf("Sum = %v, want 1.0", sum)
			}
		})
	}
}

func TestTransitionErrors(t *testing.T) {
	g := corpus1(t)

	tests := []struct {
		name     string
		page     string
		damping  float64
		wantCode errors.Code
	}{
		{name: "DampingZero", page: "1.html", damping: 0, wantCode: errors.ErrCodeInvalidDamping},
		{name: "DampingOne", page: "1.html", damping: 1, wantCode: errors.ErrCodeInvalidDamping},
		{name: "DampingNegative", page: "1.html", damping: -0.1, wantCode: errors.ErrCodeInvalidDamping},
		{name: "UnknownPage", page: "ghost.html", damping: 0.85, wantCode: errors.ErrCodeUnknownPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transition(g, tt.page, tt.damping)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestTransitionSumsToOne(t *testing.T) {
	g := mustGraph(t, map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
		"c": {},
		"d": {"a", "b", "c"},
	})

	for _, damping := range []float64{0.05, 0.5, 0.85, 0.99} {
		for _, page := range g.Pages() {
			dist, err := Transition(g, page, damping)
			if err != nil {
				t.Fatalf("Transition(%s, %v): %v", page, damping, err)
			}
			if sum := dist.Sum(); math.Abs(sum-1) > 1e-9 {
				t.Errorf("Transition(%s, %v) sums to %v", page, damping, sum)
			}
		}
	}
}
