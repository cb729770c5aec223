package types

import "sort"

// NameSet is a set of unique names compared by exact string equality.
type NameSet map[string]struct{}

// NewNameSet creates a set holding the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	s.Add(names...)
	return s
}

// Add inserts names into the set.
func (s NameSet) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of unique names.
func (s NameSet) Len() int {
	return len(s)
}

// Sorted returns the names in ascending order. The result is never nil so it
// encodes as a JSON array.
func (s NameSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set containing every name of every input set.
func Union(sets ...NameSet) NameSet {
	out := make(NameSet)
	for _, s := range sets {
		for n := range s {
			out[n] = struct{}{}
		}
	}
	return out
}
