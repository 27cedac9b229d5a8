package automaton

// Mode selects which invariants Validate enforces.
type Mode int

const (
	// NFA requires only structural soundness.
	NFA Mode = iota
	// DFA additionally requires a total, single-valued transition function.
	DFA
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case NFA:
		return "NFA"
	case DFA:
		return "DFA"
	default:
		return "unknown"
	}
}

// Automaton is a finite automaton. Start is empty when no start state has
// been declared.
type Automaton struct {
	Alphabet    Set
	States      Set
	Start       string
	Final       Set
	Transitions map[string]map[string]Set
}

// New returns an empty automaton with every collection allocated.
func New() *Automaton {
	return &Automaton{
		Alphabet:    NewSet(),
		States:      NewSet(),
		Final:       NewSet(),
		Transitions: make(map[string]map[string]Set),
	}
}

// AddTransition records that reading symbol in state from may lead to to.
// Adding the same transition twice has no effect.
func (a *Automaton) AddTransition(from, symbol, to string) {
	bySymbol, ok := a.Transitions[from]
	if !ok {
		bySymbol = make(map[string]Set)
		a.Transitions[from] = bySymbol
	}
	targets, ok := bySymbol[symbol]
	if !ok {
		targets = NewSet()
		bySymbol[symbol] = targets
	}
	targets.Add(to)
}

// Next returns the destinations of (state, symbol). The returned set must
// not be modified; it is nil when no transition exists.
func (a *Automaton) Next(state, symbol string) Set {
	return a.Transitions[state][symbol]
}

// TransitionCount returns the number of (state, symbol, destination) triples.
func (a *Automaton) TransitionCount() int {
	n := 0
	for _, bySymbol := range a.Transitions {
		for _, targets := range bySymbol {
			n += targets.Len()
		}
	}
	return n
}

// Accepts reports whether the automaton accepts the word. It tracks the set
// of reachable states, so it is valid for any structurally sound automaton,
// deterministic or not. A symbol outside the alphabet rejects the word.
func (a *Automaton) Accepts(word []string) bool {
	if a.Start == "" {
		return false
	}
	current := NewSet(a.Start)
	for _, symbol := range word {
		if !a.Alphabet.Has(symbol) {
			return false
		}
		next := NewSet()
		for state := range current {
			next.Union(a.Next(state, symbol))
		}
		if next.Len() == 0 {
			return false
		}
		current = next
	}
	for state := range current {
		if a.Final.Has(state) {
			return true
		}
	}
	return false
}
