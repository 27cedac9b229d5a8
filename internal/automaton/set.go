package automaton

import (
	"maps"
	"slices"
	"strings"
)

// Set is an unordered collection of state names or symbols.
type Set map[string]struct{}

// NewSet returns a set holding the given members.
func NewSet(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Add inserts m into the set.
func (s Set) Add(m string) {
	s[m] = struct{}{}
}

// Has reports whether m is a member of the set.
func (s Set) Has(m string) bool {
	_, ok := s[m]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Union adds every member of other to s.
func (s Set) Union(other Set) {
	for m := range other {
		s[m] = struct{}{}
	}
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for m := range s {
		if !other.Has(m) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	out.Union(s)
	return out
}

// String renders the set as a sorted, bracketed list, e.g. [a b].
func (s Set) String() string {
	return "[" + strings.Join(s.Sorted(), " ") + "]"
}
