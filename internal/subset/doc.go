// Package subset converts a nondeterministic finite automaton into an
// equivalent, total deterministic one by subset construction.
//
// Each DFA state stands for the set of NFA states reachable on some input.
// Subsets are explored breadth-first from {start}; a subset is identified by
// its canonical name (see automaton.CanonicalName), so the visited set and the
// work queue are plain string-keyed structures. Whenever a subset has no
// successor on a symbol the transition is routed to a single shared sink
// state, added once the traversal is over, which makes the result total.
package subset
