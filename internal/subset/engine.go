package subset

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/nfa2dfa/internal/automaton"
	"github.com/vk/nfa2dfa/internal/ctxlog"
)

// SinkName is the name given to the absorbing reject state.
const SinkName = "SINK"

// ErrNameCollision is returned when two different reachable subsets serialize
// to the same canonical name, which can only happen when NFA state names
// contain braces or commas.
var ErrNameCollision = errors.New("distinct state subsets share a canonical name")

// construction holds the state of one breadth-first traversal. It is owned by
// a single Convert call.
type construction struct {
	nfa     *automaton.Automaton
	dfa     *automaton.Automaton
	symbols []string
	visited map[string]automaton.Set
	queue   []automaton.Set
	// stuck holds every (state, symbol) pair without a successor; they are
	// routed to the sink once all DFA state names are known.
	stuck []stuckEdge
}

type stuckEdge struct{ from, symbol string }

// Convert builds the DFA equivalent to nfa. The NFA must already satisfy the
// structural invariants checked by automaton.Validate in NFA mode; the
// returned DFA has been validated in DFA mode. The context only carries the
// logger, the traversal always runs to completion.
func Convert(ctx context.Context, nfa *automaton.Automaton) (*automaton.Automaton, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Subset construction started.",
		"nfa_states", nfa.States.Len(),
		"symbols", nfa.Alphabet.Len(),
		"start", nfa.Start,
	)

	c := newConstruction(nfa)
	for len(c.queue) > 0 {
		current := c.queue[0]
		c.queue = c.queue[1:]
		if err := c.expand(ctx, current); err != nil {
			return nil, err
		}
	}
	sink := c.addSink(ctx)

	if err := automaton.Validate(c.dfa, automaton.DFA); err != nil {
		return nil, fmt.Errorf("subset construction produced an invalid DFA: %w", err)
	}

	logger.Debug("Subset construction finished.",
		"dfa_states", c.dfa.States.Len(),
		"final_states", c.dfa.Final.Len(),
		"transitions", c.dfa.TransitionCount(),
		"sink", sink,
	)
	return c.dfa, nil
}

func newConstruction(nfa *automaton.Automaton) *construction {
	dfa := automaton.New()
	dfa.Alphabet = nfa.Alphabet.Clone()

	start := automaton.NewSet(nfa.Start)
	dfa.Start = automaton.CanonicalName(start)

	return &construction{
		nfa:     nfa,
		dfa:     dfa,
		symbols: nfa.Alphabet.Sorted(),
		visited: map[string]automaton.Set{dfa.Start: start},
		queue:   []automaton.Set{start},
	}
}

// expand registers current as a DFA state and computes its successor on
// every symbol, enqueueing subsets that have not been seen yet.
func (c *construction) expand(ctx context.Context, current automaton.Set) error {
	name := automaton.CanonicalName(current)
	c.dfa.States.Add(name)
	for state := range current {
		if c.nfa.Final.Has(state) {
			c.dfa.Final.Add(name)
			break
		}
	}

	for _, symbol := range c.symbols {
		next := automaton.NewSet()
		for state := range current {
			next.Union(c.nfa.Next(state, symbol))
		}
		if next.Len() == 0 {
			c.stuck = append(c.stuck, stuckEdge{from: name, symbol: symbol})
			continue
		}

		nextName := automaton.CanonicalName(next)
		c.dfa.AddTransition(name, symbol, nextName)

		if seen, ok := c.visited[nextName]; ok {
			if !seen.Equal(next) {
				return fmt.Errorf("%w: %s is both %s and %s", ErrNameCollision, nextName, seen, next)
			}
			continue
		}
		c.visited[nextName] = next
		c.queue = append(c.queue, next)
	}
	return nil
}

// addSink creates the sink with a self-loop on every symbol and routes every
// stuck pair to it. It returns the sink's name, or "" when the DFA is already
// total. The name is SinkName unless a DFA state already carries it, in which
// case primes are appended until it is free.
func (c *construction) addSink(ctx context.Context) string {
	if len(c.stuck) == 0 {
		return ""
	}
	sink := SinkName
	for c.dfa.States.Has(sink) {
		sink += "'"
	}

	c.dfa.States.Add(sink)
	for _, s := range c.symbols {
		c.dfa.AddTransition(sink, s, sink)
	}
	for _, e := range c.stuck {
		c.dfa.AddTransition(e.from, e.symbol, sink)
	}
	ctxlog.FromContext(ctx).Debug("Sink state created.", "name", sink, "routed", len(c.stuck))
	return sink
}
