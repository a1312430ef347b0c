package stemmer

import (
	"slices"
	"sort"
)

// Dictionary is the set of known roots, kept as a sorted slice for binary
// search. It is immutable after construction and safe for concurrent use.
type Dictionary struct {
	words []string
}

// NewDictionary returns a dictionary of the given roots. Words are copied,
// sorted and de-duplicated; empty strings are dropped.
func NewDictionary(words []string) *Dictionary {
	sorted := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			sorted = append(sorted, w)
		}
	}
	sort.Strings(sorted)
	return &Dictionary{words: slices.Compact(sorted)}
}

// Contains reports whether root is a known root. Expects normalized input.
func (d *Dictionary) Contains(root string) bool {
	if d == nil || root == "" {
		return false
	}
	i := sort.SearchStrings(d.words, root)
	return i < len(d.words) && d.words[i] == root
}

// Len returns the number of roots.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns a copy of the roots in sorted order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.words)
}
