package rank

import (
	"math"
	"reflect"
	"testing"

	"github.com/linkrank/linkrank/pkg/errors"
)

func TestIterateSinglePage(t *testing.T) {
	g := mustGraph(t, map[string][]string{"only.html": nil})

	dist, err := Iterate(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if got := dist["only.html"]; math.Abs(got-1) > 1e-9 {
		t.Errorf("rank = %v, want 1.0", got)
	}
}

func TestIterateSymmetricPair(t *testing.T) {
	g := mustGraph(t, map[string][]string{
		"a.html": {"b.html"},
		"b.html": {"a.html"},
	})

	dist, err := Iterate(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	for _, page := range []string{"a.html", "b.html"} {
		if got := dist[page]; math.Abs(got-0.5) > 1e-6 {
			t.Errorf("rank[%s] = %v, want 0.5", page, got)
		}
	}
}

func TestIterateSinkRanksHighest(t *testing.T) {
	// a and b both link to c; c is a sink.
	g := mustGraph(t, map[string][]string{
		"a.html": {"c.html"},
		"b.html": {"c.html"},
		"c.html": {},
	})

	dist, err := Iterate(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if dist["c.html"] <= dist["a.html"] || dist["c.html"] <= dist["b.html"] {
		t.Errorf("sink should rank strictly highest: %v", dist)
	}
}

func TestIterateSumsToOne(t *testing.T) {
	g := corpus1(t)

	dist, err := Iterate(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if len(dist) != g.Len() {
		t.Errorf("distribution covers %d pages, want %d", len(dist), g.Len())
	}
	if sum := dist.Sum(); math.Abs(sum-1) > 1e-6 {
		t.Errorf("Sum = %v, want 1.0", sum)
	}
}

func TestIterateDeterministic(t *testing.T) {
	g := corpus1(t)
	opts := DefaultOptions()

	first, err := Iterate(g, opts)
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	second, err := Iterate(g, opts)
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs on the same graph differ:\n%v\n%v", first, second)
	}
}

func TestIterateReportsPasses(t *testing.T) {
	g := corpus1(t)

	_, passes, err := IterateN(g, DefaultOptions())
	if err != nil {
		t.Fatalf("IterateN: %v", err)
	}
	if passes < 1 {
		t.Errorf("passes = %d, want >= 1", passes)
	}
}

func TestIteratePassCap(t *testing.T) {
	g := corpus1(t)

	opts := DefaultOptions()
	opts.Threshold = 1e-15 // effectively unreachable
	opts.MaxPasses = 2

	_, err := Iterate(g, opts)
	if !errors.Is(err, errors.ErrCodeConvergence) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeConvergence)
	}
}

func TestIterateOptionValidation(t *testing.T) {
	g := corpus1(t)

	tests := []struct {
		name     string
		mutate   func(*Options)
		wantCode errors.Code
	}{
		{name: "BadDamping", mutate: func(o *Options) { o.Damping = 1.2 }, wantCode: errors.ErrCodeInvalidDamping},
		{name: "BadThreshold", mutate: func(o *Options) { o.Threshold = 0 }, wantCode: errors.ErrCodeInvalidThreshold},
		{name: "BadSamples", mutate: func(o *Options) { o.Samples = -3 }, wantCode: errors.ErrCodeInvalidSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			if _, err := Iterate(g, opts); !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}
