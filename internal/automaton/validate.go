package automaton

import (
	"fmt"
	"maps"
	"slices"
)

// Rule identifies the invariant a ValidationError reports.
type Rule int

const (
	RuleNoStart Rule = iota
	RuleStartNotInStates
	RuleFinalNotInStates
	RuleSourceNotInStates
	RuleSymbolNotInAlphabet
	RuleTargetNotInStates
	RuleMissingTransition
	RuleAmbiguousTransition
)

// ValidationError reports the first invariant an automaton violates, along
// with the state and symbol that violate it where applicable.
type ValidationError struct {
	Rule   Rule
	State  string
	Symbol string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Rule {
	case RuleNoStart:
		return "No start state"
	case RuleStartNotInStates:
		return fmt.Sprintf("Start state %s is not in states", e.State)
	case RuleFinalNotInStates:
		return fmt.Sprintf("Final state %s is not in states", e.State)
	case RuleSourceNotInStates:
		return fmt.Sprintf("Transition state %s is not in states", e.State)
	case RuleSymbolNotInAlphabet:
		return fmt.Sprintf("Transition symbol %s is not in alphabet", e.Symbol)
	case RuleTargetNotInStates:
		return fmt.Sprintf("Transition target state %s is not in states", e.State)
	case RuleMissingTransition:
		return fmt.Sprintf("State %s has no transition for symbol %s", e.State, e.Symbol)
	case RuleAmbiguousTransition:
		return fmt.Sprintf("State %s has more than one transition for symbol %s", e.State, e.Symbol)
	default:
		return fmt.Sprintf("invalid automaton (rule %d)", int(e.Rule))
	}
}

// Validate checks a fully populated automaton and returns a *ValidationError
// for the first violated invariant, or nil. It never modifies a. Iteration is
// over sorted names so the reported violation is reproducible.
func Validate(a *Automaton, mode Mode) error {
	if a.Start == "" {
		return &ValidationError{Rule: RuleNoStart}
	}
	if !a.States.Has(a.Start) {
		return &ValidationError{Rule: RuleStartNotInStates, State: a.Start}
	}
	for _, f := range a.Final.Sorted() {
		if !a.States.Has(f) {
			return &ValidationError{Rule: RuleFinalNotInStates, State: f}
		}
	}
	if err := validateTransitions(a); err != nil {
		return err
	}
	if mode == DFA {
		return validateDeterminism(a)
	}
	return nil
}

func validateTransitions(a *Automaton) error {
	for _, from := range slices.Sorted(maps.Keys(a.Transitions)) {
		if !a.States.Has(from) {
			return &ValidationError{Rule: RuleSourceNotInStates, State: from}
		}
		bySymbol := a.Transitions[from]
		for _, symbol := range slices.Sorted(maps.Keys(bySymbol)) {
			if !a.Alphabet.Has(symbol) {
				return &ValidationError{Rule: RuleSymbolNotInAlphabet, State: from, Symbol: symbol}
			}
			for _, to := range bySymbol[symbol].Sorted() {
				if !a.States.Has(to) {
					return &ValidationError{Rule: RuleTargetNotInStates, State: to, Symbol: symbol}
				}
			}
		}
	}
	return nil
}

func validateDeterminism(a *Automaton) error {
	symbols := a.Alphabet.Sorted()
	for _, state := range a.States.Sorted() {
		for _, symbol := range symbols {
			switch n := a.Next(state, symbol).Len(); {
			case n == 0:
				return &ValidationError{Rule: RuleMissingTransition, State: state, Symbol: symbol}
			case n > 1:
				return &ValidationError{Rule: RuleAmbiguousTransition, State: state, Symbol: symbol}
			}
		}
	}
	return nil
}
