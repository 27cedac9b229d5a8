package automaton

import "strings"

// CanonicalName returns the identifier of a subset of states. The empty set
// is named "", a singleton keeps the name of its only member, and any other
// set is written as its sorted members joined by commas inside braces, e.g.
// {q0,q1}. The result does not depend on insertion order.
func CanonicalName(s Set) string {
	switch s.Len() {
	case 0:
		return ""
	case 1:
		for m := range s {
			return m
		}
	}
	return "{" + strings.Join(s.Sorted(), ",") + "}"
}
