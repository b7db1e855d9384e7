package automaton_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/desdiag/automaton"
)

// buildTriangle returns 0 -a-> 1 -b-> 2 -c-> 0 with an extra self-loop 0 -d-> 0.
func buildTriangle(t *testing.T) *automaton.Automaton {
	t.Helper()
	a := automaton.New(0)
	for _, s := range []automaton.State{1, 2} {
		require.True(t, a.AddState(s))
	}
	require.True(t, a.AddTransition(0, 'a', 1))
	require.True(t, a.AddTransition(1, 'b', 2))
	require.True(t, a.AddTransition(2, 'c', 0))
	require.True(t, a.AddTransition(0, 'd', 0))

	return a
}

func TestNew_RootMaterialized(t *testing.T) {
	a := automaton.New(7)
	assert.Equal(t, automaton.State(7), a.Root())
	assert.True(t, a.HasState(7))
	assert.Equal(t, 1, a.Len())
	assert.Zero(t, a.NumTransitions())
	assert.Nil(t, a.Symbols(7))
}

func TestAddState_Idempotent(t *testing.T) {
	a := automaton.New(0)
	assert.True(t, a.AddState(3))
	assert.False(t, a.AddState(3))
	assert.False(t, a.AddState(0))
	assert.Equal(t, []automaton.State{0, 3}, a.States())
}

func TestAddTransition_NoOverwrite(t *testing.T) {
	a := buildTriangle(t)

	// Second transition on an already-used symbol is ignored.
	assert.False(t, a.AddTransition(0, 'a', 2))
	next, err := a.Navigate(0, 'a')
	require.NoError(t, err)
	assert.Equal(t, automaton.State(1), next)
	assert.Equal(t, 4, a.NumTransitions())
}

func TestAddTransition_MaterializesSource(t *testing.T) {
	a := automaton.New(0)
	assert.True(t, a.AddTransition(5, 'x', 0))
	assert.True(t, a.HasState(5))
	assert.True(t, a.HasTransition(5, 'x'))
}

func TestNavigate_Errors(t *testing.T) {
	a := buildTriangle(t)

	_, err := a.Navigate(1, 'a')
	assert.True(t, errors.Is(err, automaton.ErrSymbolNotFound))

	_, err = a.Navigate(42, 'a')
	assert.ErrorIs(t, err, automaton.ErrSymbolNotFound)

	_, err = automaton.Navigate(nil, 0, 'a')
	assert.ErrorIs(t, err, automaton.ErrStateNotFound)

	next, err := automaton.Navigate(a, 2, 'c')
	require.NoError(t, err)
	assert.Equal(t, automaton.State(0), next)
}

func TestSymbols_Sorted(t *testing.T) {
	a := automaton.New(0)
	for _, s := range "zmbqa" {
		a.AddTransition(0, automaton.Symbol(s), 0)
	}
	assert.Equal(t, []automaton.Symbol{'a', 'b', 'm', 'q', 'z'}, a.Symbols(0))
}

func TestTransitions_ReturnsCopy(t *testing.T) {
	a := buildTriangle(t)
	row := a.Transitions(0)
	row['a'] = 2
	delete(row, 'd')

	next, err := a.Navigate(0, 'a')
	require.NoError(t, err)
	assert.Equal(t, automaton.State(1), next)
	assert.True(t, a.HasTransition(0, 'd'))
}

func TestCloneEqual(t *testing.T) {
	a := buildTriangle(t)
	c := a.Clone()
	assert.True(t, a.Equal(c))

	c.AddTransition(1, 'z', 1)
	assert.False(t, a.Equal(c))
	assert.False(t, a.HasTransition(1, 'z'))

	assert.False(t, a.Equal(automaton.New(1)))
	assert.False(t, a.Equal(nil))
	var nilA *automaton.Automaton
	assert.True(t, nilA.Equal(nil))
}

func TestEdges_FromEdges_RoundTrip(t *testing.T) {
	a := buildTriangle(t)
	a.AddState(9) // isolated state without outgoing edges

	edges := a.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, automaton.Transition{From: 0, Symbol: 'a', To: 1}, edges[0])
	assert.Equal(t, automaton.Transition{From: 0, Symbol: 'd', To: 0}, edges[1])

	b, err := automaton.FromEdges(a.Root(), a.States(), edges)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	_, err = automaton.FromEdges(0, nil, append(edges, automaton.Transition{From: 0, Symbol: 'a', To: 2}))
	assert.ErrorIs(t, err, automaton.ErrInvalidConfig)
}
