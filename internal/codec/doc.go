// Package codec reads automaton descriptions into the automaton model and
// writes automata back out in the canonical text format.
//
// The Loader interface is format-agnostic; TextLoader implements it for the
// line-oriented section format (ALPHABET, STATES, START, FINAL, TRANSITIONS,
// END). Other formats, such as HCL, live in their own packages and return the
// same error types so the application can report them uniformly.
package codec
