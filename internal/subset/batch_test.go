package subset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/vk/nfa2dfa/internal/automaton"
)

func TestConvertAll(t *testing.T) {
	nfas := []*automaton.Automaton{exampleNFA(), secondToLastNFA(), exampleNFA()}

	dfas, err := ConvertAll(context.Background(), nfas, 2)
	require.NoError(t, err)
	require.Len(t, dfas, 3)

	for i, dfa := range dfas {
		require.NotNil(t, dfa, "index %d", i)
		assert.NoError(t, automaton.Validate(dfa, automaton.DFA))
	}
	assert.True(t, dfas[0].States.Has(SinkName))
	assert.False(t, dfas[1].States.Has(SinkName))
}

func TestConvertAll_ReportsEveryFailure(t *testing.T) {
	noStart := exampleNFA()
	noStart.Start = ""
	badTarget := exampleNFA()
	badTarget.AddTransition("q1", "a", "q7")

	dfas, err := ConvertAll(context.Background(), []*automaton.Automaton{noStart, exampleNFA(), badTarget}, 0)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "automaton 1: No start state", errs[0].Error())
	assert.Equal(t, "automaton 3: Transition target state q7 is not in states", errs[1].Error())

	var item *ItemError
	require.ErrorAs(t, errs[1], &item)
	assert.Equal(t, 3, item.Index)
	var verr *automaton.ValidationError
	require.ErrorAs(t, errs[1], &verr)
	assert.Equal(t, automaton.RuleTargetNotInStates, verr.Rule)

	assert.Nil(t, dfas[0])
	assert.NotNil(t, dfas[1])
	assert.Nil(t, dfas[2])
}

func TestConvertAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dfas, err := ConvertAll(ctx, []*automaton.Automaton{exampleNFA()}, 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, dfas[0])
}

func TestConvertAll_Empty(t *testing.T) {
	dfas, err := ConvertAll(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, dfas)
}
