package graph

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		adjacency map[string][]string
		wantErr   error
		wantPages []string
	}{
		{
			name:      "Empty",
			adjacency: map[string][]string{},
			wantErr:   ErrEmptyUniverse,
		},
		{
			name:      "Nil",
			adjacency: nil,
			wantErr:   ErrEmptyUniverse,
		},
		{
			name:      "SinglePage",
			adjacency: map[string][]string{"a.html": nil},
			wantPages: []string{"a.html"},
		},
		{
			name: "SortedUniverse",
			adjacency: map[string][]string{
				"c.html": nil,
				"a.html": {"c.html"},
				"b.html": {"a.html", "c.html"},
			},
			wantPages: []string{"a.html", "b.html", "c.html"},
		},
		{
			name: "DanglingTarget",
			adjacency: map[string][]string{
				"a.html": {"missing.html"},
			},
			wantErr: ErrDanglingLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.adjacency)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := g.Pages(); !reflect.DeepEqual(got, tt.wantPages) {
				t.Errorf("Pages = %v, want %v", got, tt.wantPages)
			}
		})
	}
}

func TestNewDropsSelfLoops(t *testing.T) {
	g, err := New(map[string][]string{
		"a.html": {"a.html", "b.html"},
		"b.html": {"b.html"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	i, err := g.Index("a.html")
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if got := g.OutDegree(i); got != 1 {
		t.Errorf("OutDegree(a) = %d, want 1", got)
	}

	j, err := g.Index("b.html")
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if !g.IsSink(j) {
		t.Error("b.html should be a sink after its self-loop is dropped")
	}
}

func TestNewCollapsesDuplicateLinks(t *testing.T) {
	g, err := New(map[string][]string{
		"a.html": {"b.html", "b.html", "b.html"},
		"b.html": nil,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	i, _ := g.Index("a.html")
	if got := g.OutDegree(i); got != 1 {
		t.Errorf("OutDegree(a) = %d, want 1", got)
	}
}

func TestIndexUnknownPage(t *testing.T) {
	g, err := New(map[string][]string{"a.html": nil})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := g.Index("nope.html"); !errors.Is(err, ErrUnknownPage) {
		t.Errorf("Index(nope) error = %v, want ErrUnknownPage", err)
	}
	if g.Has("nope.html") {
		t.Error("Has(nope) = true, want false")
	}
}

func TestAdjacencyRoundTrip(t *testing.T) {
	want := map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {},
	}

	g, err := New(want)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := g.Adjacency(); !reflect.DeepEqual(got, want) {
		t.Errorf("Adjacency = %v, want %v", got, want)
	}
}

func TestMarshalReadGraph(t *testing.T) {
	adjacency := map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html"},
	}
	g, err := New(adjacency)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	got, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if !reflect.DeepEqual(got.Adjacency(), g.Adjacency()) {
		t.Errorf("round trip changed adjacency: got %v, want %v", got.Adjacency(), g.Adjacency())
	}
}

func TestReadGraph(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "Valid",
			input: `{"pages":[{"name":"a","links":["b"]},{"name":"b"}]}`,
		},
		{
			name:    "InvalidJSON",
			input:   `{"pages":`,
			wantErr: true,
		},
		{
			name:    "DanglingLink",
			input:   `{"pages":[{"name":"a","links":["ghost"]}]}`,
			wantErr: true,
		},
		{
			name:    "EmptyUniverse",
			input:   `{"pages":[]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGraph(bytes.NewReader([]byte(tt.input)))
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadGraph error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteReadGraphFile(t *testing.T) {
	g, err := New(map[string][]string{
		"a.html": {"b.html"},
		"b.html": nil,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if !reflect.DeepEqual(got.Adjacency(), g.Adjacency()) {
		t.Errorf("file round trip changed adjacency")
	}
}
