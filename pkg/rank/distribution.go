package rank

import "sort"

// Distribution maps each page name to a probability in [0, 1].
// A well-formed Distribution covers the full page universe and sums to
// 1.0 within floating-point tolerance. Distributions are value objects:
// recomputed fresh by each estimator call, never mutated in place.
type Distribution map[string]float64

// Sum returns the total probability mass.
// Useful for sanity checks; a well-formed distribution sums to ~1.0.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, p := range d {
		sum += p
	}
	return sum
}

// Entry pairs a page with its rank for ordered presentation.
type Entry struct {
	Page string
	Rank float64
}

// Sorted returns the distribution's entries ordered by descending rank,
// with ties broken by ascending page name.
func (d Distribution) Sorted() []Entry {
	entries := make([]Entry, 0, len(d))
	for page, rank := range d {
		entries = append(entries, Entry{Page: page, Rank: rank})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rank != entries[j].Rank {
			return entries[i].Rank > entries[j].Rank
		}
		return entries[i].Page < entries[j].Page
	})
	return entries
}

// ByName returns the distribution's entries ordered by ascending page
// name, the order the CLI prints results in.
func (d Distribution) ByName() []Entry {
	entries := make([]Entry, 0, len(d))
	for page, rank := range d {
		entries = append(entries, Entry{Page: page, Rank: rank})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Page < entries[j].Page })
	return entries
}
