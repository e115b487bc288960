package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/linkrank/linkrank/pkg/errors"
)

// writeCorpus creates a temp corpus directory from name -> file contents.
func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<html><body><a href="2.html">two</a></body></html>`,
		"2.html": `<html><body><a href="1.html">one</a><a href="3.html">three</a></body></html>`,
		"3.html": `<html><body><a href="3.html">self</a><a href="http://example.com/">out</a></body></html>`,
		"notes.txt": `not a page, <a href="1.html">ignored</a>`,
	})

	g, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {}, // self-loop and external link both pruned
	}
	if got := g.Adjacency(); !reflect.DeepEqual(got, want) {
		t.Errorf("Adjacency = %v, want %v", got, want)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestLoadEmptyCorpus(t *testing.T) {
	dir := writeCorpus(t, map[string]string{"readme.md": "no pages here"})

	_, err := Load(dir)
	if !errors.Is(err, errors.ErrCodeMalformedGraph) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeMalformedGraph)
	}
}

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "NoAnchors",
			input: `<html><body><p>plain</p></body></html>`,
			want:  nil,
		},
		{
			name:  "MultipleAnchors",
			input: `<a href="a.html">a</a><a href="b.html">b</a>`,
			want:  []string{"a.html", "b.html"},
		},
		{
			name:  "AnchorWithoutHref",
			input: `<a name="top">anchor</a><a href="x.html">x</a>`,
			want:  []string{"x.html"},
		},
		{
			name:  "MalformedMarkup",
			input: `<html><body><a href="a.html">unclosed<div><a href="b.html">`,
			want:  []string{"a.html", "b.html"},
		},
		{
			name:  "DuplicatesPreserved",
			input: `<a href="a.html">1</a><a href="a.html">2</a>`,
			want:  []string{"a.html", "a.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractLinks(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ExtractLinks: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLinks = %v, want %v", got, tt.want)
			}
		})
	}
}
