package diagnosability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/builder"
	"github.com/katalvlaran/desdiag/diagnosability"
)

func TestIsDiagnosable_SingleFixtures(t *testing.T) {
	// After the fault only b is possible, before it only a: the fault is
	// certain at the first observation after it.
	a, cfg := fixture(t, "ab", "u", false,
		edge{0, 'a', 0}, edge{0, 'u', 1}, edge{1, 'b', 1})
	ok, err := diagnosability.IsDiagnosable(a, cfg)
	require.NoError(t, err)
	assert.True(t, ok)

	// Faulty and normal runs both produce a^ω forever.
	a, cfg = fixture(t, "a", "u", false,
		edge{0, 'a', 0}, edge{0, 'u', 1}, edge{1, 'a', 1})
	ok, err = diagnosability.IsDiagnosable(a, cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDiagnosable_MultiChain(t *testing.T) {
	// 0 -u-> 1 -v-> 2 with b only at 2: one chain, one label.
	edges := []edge{{0, 'a', 0}, {0, 'u', 1}, {1, 'v', 2}, {2, 'b', 2}}
	a, cfg := fixture(t, "ab", "uv", true, edges...)
	ok, err := diagnosability.IsDiagnosable(a, cfg)
	require.NoError(t, err)
	assert.True(t, ok)

	obs, err := diagnosability.BuildObserver(a, cfg, diagnosability.ModeMulti)
	require.NoError(t, err)
	root := diagnosability.ObserverKey{State: 0}
	assert.Equal(t,
		[]diagnosability.ObserverKey{{State: 2, Label: diagnosability.NewFaultSet(1, 2)}},
		obs.Successors(root, 'b'))

	// A second fault path 0 -v-> 3 with b^ω makes {F1,F2} and {F1}
	// indistinguishable.
	a, cfg = fixture(t, "ab", "uv", true, append(edges, edge{0, 'v', 3}, edge{3, 'b', 3})...)
	ok, err = diagnosability.IsDiagnosable(a, cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDiagnosable_Errors(t *testing.T) {
	_, err := diagnosability.IsDiagnosable(nil, &automaton.Config{})
	assert.ErrorIs(t, err, diagnosability.ErrNilAutomaton)
	_, err = diagnosability.IsDiagnosableMulti(automaton.New(0), nil)
	assert.ErrorIs(t, err, diagnosability.ErrNilAutomaton)

	// z is not part of the config alphabet.
	a, cfg := fixture(t, "a", "u", false, edge{0, 'a', 0})
	a.AddTransition(0, 'z', 0)
	_, err = diagnosability.IsDiagnosable(a, cfg)
	assert.ErrorIs(t, err, diagnosability.ErrUnknownSymbol)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a, cfg = fixture(t, "a", "u", false, edge{0, 'a', 0})
	_, err = diagnosability.IsDiagnosable(a, cfg, diagnosability.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = diagnosability.Compose(nil)
	assert.ErrorIs(t, err, diagnosability.ErrNilAutomaton)
}

func TestIsDiagnosable_Stats(t *testing.T) {
	a, cfg := fixture(t, "a", "u", false,
		edge{0, 'a', 0}, edge{0, 'u', 1}, edge{1, 'a', 1})

	var st diagnosability.Stats
	_, err := diagnosability.IsDiagnosable(a, cfg, diagnosability.WithStats(&st))
	require.NoError(t, err)
	// Observer: (0,N) and (1,{F1}); product: the four pairs of them.
	assert.Equal(t, 2, st.ObserverNodes)
	assert.Equal(t, 3, st.ObserverEdges)
	assert.Equal(t, 4, st.CompositeNodes)
	assert.Equal(t, 2, st.Mismatched)
}

func TestIsDiagnosable_FaultOrderInvariant(t *testing.T) {
	for seed := int64(0); seed < 15; seed++ {
		a, cfg, err := builder.Build(11, 40, seed%2 == 0, seed%3 == 0, builder.WithSeed(seed))
		require.NoError(t, err)

		rev, err := diagnosability.IsDiagnosable(a, cfg, diagnosability.WithFaultOrder(automaton.OrderReversed))
		require.NoError(t, err)
		nat, err := diagnosability.IsDiagnosable(a, cfg, diagnosability.WithFaultOrder(automaton.OrderNatural))
		require.NoError(t, err)
		assert.Equal(t, rev, nat, "seed %d", seed)
	}
}

func TestIsDiagnosable_SingleMultiAgree(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		a, cfg, err := builder.Build(11, 50, seed%2 == 1, false, builder.WithSeed(seed))
		require.NoError(t, err)

		single, err := diagnosability.IsDiagnosableSingle(a, cfg)
		require.NoError(t, err)
		multi, err := diagnosability.IsDiagnosableMulti(a, cfg)
		require.NoError(t, err)
		assert.Equal(t, single, multi, "seed %d", seed)
	}
}

func TestCompose_PairAllSuperset(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		a, cfg, err := builder.Build(11, 30, false, true, builder.WithSeed(seed))
		require.NoError(t, err)
		obs, err := diagnosability.BuildObserver(a, cfg, diagnosability.ModeMulti)
		require.NoError(t, err)

		first, err := diagnosability.Compose(obs)
		require.NoError(t, err)
		all, err := diagnosability.Compose(obs, diagnosability.WithPairing(diagnosability.PairAll))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, all.Len(), first.Len())
		for _, k := range first.Nodes() {
			require.True(t, all.Has(k), "seed %d: node %s missing", seed, k)
			assert.Subset(t, all.Edges(k), first.Edges(k))
		}
	}
}
