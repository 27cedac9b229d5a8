package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of an automaton file: one or more
// automaton blocks, converted independently. Unknown blocks and attributes are
// rejected by gohcl.
type fileRoot struct {
	Automata []*automatonBlock `hcl:"automaton,block"`
}

// automatonBlock mirrors the sections of the text format.
type automatonBlock struct {
	Alphabet    []string           `hcl:"alphabet"`
	States      []string           `hcl:"states"`
	Start       string             `hcl:"start,optional"`
	Final       []string           `hcl:"final,optional"`
	Transitions []*transitionBlock `hcl:"transition,block"`
}

// transitionBlock is `transition "<state>" "<symbol>" { to = ... }`. To is
// kept as an expression so it can be either a single state or a list.
type transitionBlock struct {
	From   string         `hcl:"from,label"`
	Symbol string         `hcl:"symbol,label"`
	To     hcl.Expression `hcl:"to"`
}
