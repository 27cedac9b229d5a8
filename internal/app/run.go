package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/vk/nfa2dfa/internal/automaton"
	"github.com/vk/nfa2dfa/internal/codec"
	"github.com/vk/nfa2dfa/internal/ctxlog"
	"github.com/vk/nfa2dfa/internal/subset"
)

// Run loads the configured input, converts every automaton in it and writes
// the DFAs in the canonical text format, in input order. Nothing is written
// when any stage fails.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath, "format", a.config.Format())

	dfas, err := a.Convert(ctx)
	if err != nil {
		return err
	}

	for _, dfa := range dfas {
		if err := codec.Serialize(a.outW, dfa); err != nil {
			return fmt.Errorf("failed to write DFA: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.", "automata", len(dfas))
	return nil
}

// Convert runs the load, validate and convert stages and returns one DFA per
// loaded automaton. The engine never runs on an NFA that failed validation.
// Files holding several automata are converted on the worker pool and every
// failure is reported.
func (a *App) Convert(ctx context.Context) ([]*automaton.Automaton, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	nfas, err := a.loader.Load(ctx, a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load automaton: %w", err)
	}
	a.logger.Debug("Input loaded.", "automata", len(nfas))

	if len(nfas) != 1 {
		dfas, err := subset.ConvertAll(ctx, nfas, a.config.Workers)
		if err != nil {
			return nil, err
		}
		a.logger.Info("Conversion finished.", "automata", len(dfas))
		return dfas, nil
	}

	nfa := nfas[0]
	a.logger.Debug("NFA loaded.", "states", nfa.States.Len(), "symbols", nfa.Alphabet.Len())

	if err := automaton.Validate(nfa, automaton.NFA); err != nil {
		return nil, fmt.Errorf("invalid NFA: %w", err)
	}
	a.logger.Debug("NFA validation passed.")

	dfa, err := subset.Convert(ctx, nfa)
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}
	a.logger.Info("Conversion finished.", "nfa_states", nfa.States.Len(), "dfa_states", dfa.States.Len())
	return []*automaton.Automaton{dfa}, nil
}

// Report returns the user-facing message of a resource, format or validation
// error anywhere in err's chain. A combined batch error yields one message per
// failed automaton, prefixed with its position and joined on a single line.
// ok is false when any part is some other error.
func Report(err error) (msg string, ok bool) {
	if err == nil {
		return "", false
	}
	parts := multierr.Errors(err)
	msgs := make([]string, 0, len(parts))
	for _, part := range parts {
		m, ok := reportOne(part)
		if !ok {
			return "", false
		}
		var item *subset.ItemError
		if errors.As(part, &item) {
			m = fmt.Sprintf("automaton %d: %s", item.Index, m)
		}
		msgs = append(msgs, m)
	}
	return strings.Join(msgs, "; "), true
}

func reportOne(err error) (string, bool) {
	var resErr *codec.ResourceError
	if errors.As(err, &resErr) {
		return resErr.Error(), true
	}
	var fmtErr *codec.FormatError
	if errors.As(err, &fmtErr) {
		return fmtErr.Error(), true
	}
	var valErr *automaton.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error(), true
	}
	return "", false
}
