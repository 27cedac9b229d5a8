package subset

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/vk/nfa2dfa/internal/automaton"
	"github.com/vk/nfa2dfa/internal/ctxlog"
)

// ItemError is the failure of one automaton in a batch. Index counts from 1 in
// input order.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("automaton %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// ConvertAll validates and converts independent automata on at most workers
// goroutines. The result at index i belongs to nfas[i] and is nil when that
// automaton failed. All failures are combined into the returned error as
// *ItemError values in input order; a failure never stops the other
// conversions.
func ConvertAll(ctx context.Context, nfas []*automaton.Automaton, workers int) ([]*automaton.Automaton, error) {
	if workers < 1 {
		workers = 1
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Batch conversion started.", "count", len(nfas), "workers", workers)

	results := make([]*automaton.Automaton, len(nfas))
	errs := make([]error, len(nfas))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, nfa := range nfas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = &ItemError{Index: i + 1, Err: err}
				return nil
			}
			if err := automaton.Validate(nfa, automaton.NFA); err != nil {
				errs[i] = &ItemError{Index: i + 1, Err: err}
				return nil
			}
			dfa, err := Convert(ctx, nfa)
			if err != nil {
				errs[i] = &ItemError{Index: i + 1, Err: err}
				return nil
			}
			results[i] = dfa
			return nil
		})
	}
	// Jobs record their failure in errs and always return nil so that one
	// failure does not cancel the rest; Wait only joins.
	_ = g.Wait()

	err := multierr.Combine(errs...)
	logger.Debug("Batch conversion finished.", "count", len(nfas), "failed", len(multierr.Errors(err)))
	return results, err
}
