// Package automaton defines the finite automaton model shared by every stage
// of the converter: the alphabet, the state set, the start and final states,
// and a transition relation that maps a (state, symbol) pair to a set of
// destination states.
//
// The same Automaton type describes both nondeterministic and deterministic
// automata. The difference is expressed by the Mode passed to Validate: an
// NFA only has to be structurally sound, while a DFA must additionally have
// exactly one destination for every state and symbol.
//
// An Automaton is populated once, by a codec or by the subset construction
// engine, validated immediately afterwards and then treated as read-only.
package automaton
