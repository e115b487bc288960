package graph

// Document is the canonical serialization format for link graphs.
// Used for CLI round trips (crawl -o graph.json → rank graph.json),
// cache entries, and HTTP API request bodies.
//
// The format is human-readable and round-trip faithful: a graph written
// with [MarshalGraph] and read back with [ReadGraph] has the same
// universe and link sets.
type Document struct {
	Pages []Page `json:"pages"`
}

// Page is one page entry in a [Document].
type Page struct {
	Name  string   `json:"name"`
	Links []string `json:"links,omitempty"`
}

// FromGraph converts a Graph into its serialization form.
// Pages and link sets come out in sorted order for deterministic output.
func FromGraph(g *Graph) Document {
	doc := Document{Pages: make([]Page, g.Len())}
	for i := 0; i < g.Len(); i++ {
		links := make([]string, 0, g.OutDegree(i))
		for _, j := range g.Links(i) {
			links = append(links, g.Page(j))
		}
		doc.Pages[i] = Page{Name: g.Page(i), Links: links}
	}
	return doc
}

// ToGraph builds a Graph from its serialization form.
// Construction invariants apply: an empty document or a link to an
// unlisted page is rejected.
func ToGraph(doc Document) (*Graph, error) {
	adjacency := make(map[string][]string, len(doc.Pages))
	for _, p := range doc.Pages {
		adjacency[p.Name] = p.Links
	}
	return New(adjacency)
}
