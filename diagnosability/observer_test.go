package diagnosability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/diagnosability"
)

func TestFaultSet_Canonical(t *testing.T) {
	a := diagnosability.NewFaultSet(3, 1)
	b := diagnosability.Normal.Add(1).Add(3).Add(1)
	assert.Equal(t, a, b)
	assert.Equal(t, "{F1,F3}", a.String())
	assert.Equal(t, []int{1, 3}, b.Tags())
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.Has(3))
	assert.False(t, a.Has(2))
	assert.False(t, a.Has(0))

	assert.Equal(t, "N", diagnosability.Normal.String())
	assert.True(t, diagnosability.NewFaultSet(0, 33).IsNormal())
	assert.Equal(t, diagnosability.NewFaultSet(1, 2, 3), a.Union(diagnosability.NewFaultSet(2)))

	k1 := diagnosability.ObserverKey{State: 4, Label: a}
	k2 := diagnosability.ObserverKey{State: 4, Label: b}
	assert.Equal(t, k1, k2)
	assert.Equal(t, "4:{F1,F3}", k1.String())
}

func TestBuildObserver_SingleFade(t *testing.T) {
	a, cfg := fixture(t, "ab", "u", false,
		edge{0, 'a', 0}, edge{0, 'u', 1}, edge{1, 'b', 1})

	obs, err := diagnosability.BuildObserver(a, cfg, diagnosability.ModeSingle)
	require.NoError(t, err)

	root := diagnosability.ObserverKey{State: 0, Label: diagnosability.Normal}
	f1 := diagnosability.ObserverKey{State: 1, Label: diagnosability.NewFaultSet(1)}
	assert.Equal(t, root, obs.Root)
	assert.Equal(t, []diagnosability.ObserverKey{root, f1}, obs.Nodes())
	assert.Equal(t, []diagnosability.ObserverEdge{{Symbol: 'a', To: root}, {Symbol: 'b', To: f1}}, obs.Edges(root))
	assert.Equal(t, []automaton.Symbol{'a', 'b'}, obs.Symbols(root))
	assert.Equal(t, 3, obs.NumEdges())
}

func TestBuildObserver_MultiRollback(t *testing.T) {
	// 0 -u-> 1, then two sibling fault branches 1 -v-> 2 and 1 -w-> 3.
	a, cfg := fixture(t, "abc", "uvw", true,
		edge{0, 'a', 0}, edge{0, 'u', 1}, edge{1, 'v', 2}, edge{1, 'w', 3},
		edge{2, 'b', 2}, edge{3, 'c', 3})
	root := diagnosability.ObserverKey{State: 0}

	// Reversed: u→F3, v→F2, w→F1.
	obs, err := diagnosability.BuildObserver(a, cfg, diagnosability.ModeMulti)
	require.NoError(t, err)
	assert.Equal(t, []diagnosability.ObserverKey{{State: 2, Label: diagnosability.NewFaultSet(2, 3)}},
		obs.Successors(root, 'b'))
	assert.Equal(t, []diagnosability.ObserverKey{{State: 3, Label: diagnosability.NewFaultSet(1, 3)}},
		obs.Successors(root, 'c'))

	// Natural: u→F1, v→F2, w→F3.
	obs, err = diagnosability.BuildObserver(a, cfg, diagnosability.ModeMulti,
		diagnosability.WithFaultOrder(automaton.OrderNatural))
	require.NoError(t, err)
	assert.Equal(t, []diagnosability.ObserverKey{{State: 2, Label: diagnosability.NewFaultSet(1, 2)}},
		obs.Successors(root, 'b'))
	assert.Equal(t, []diagnosability.ObserverKey{{State: 3, Label: diagnosability.NewFaultSet(1, 3)}},
		obs.Successors(root, 'c'))

	// Single mode fades one step only: nothing observable follows 1.
	obs, err = diagnosability.BuildObserver(a, cfg, diagnosability.ModeSingle)
	require.NoError(t, err)
	assert.Empty(t, obs.Successors(root, 'b'))
	assert.Equal(t, 1, obs.Len())
}

func TestBuildObserver_UnobservableCycleTerminates(t *testing.T) {
	a, cfg := fixture(t, "ab", "uv", true,
		edge{0, 'a', 0}, edge{0, 'u', 1}, edge{1, 'v', 0}, edge{1, 'b', 1})

	obs, err := diagnosability.BuildObserver(a, cfg, diagnosability.ModeMulti)
	require.NoError(t, err)

	both := diagnosability.ObserverKey{State: 0, Label: diagnosability.NewFaultSet(1, 2)}
	assert.True(t, obs.Has(both))
	assert.Contains(t, obs.Successors(obs.Root, 'a'), both)

	_, err = diagnosability.IsDiagnosableMulti(a, cfg)
	require.NoError(t, err)
}

func TestBuildObserver_ChainReentryGrowsLabel(t *testing.T) {
	// 0 -u-> 1 -v-> 2 -u-> 1: state 1 is reached again carrying {F1,F2}.
	a, cfg := fixture(t, "x", "uv", true,
		edge{0, 'u', 1}, edge{1, 'v', 2}, edge{2, 'u', 1}, edge{1, 'x', 3})

	obs, err := diagnosability.BuildObserver(a, cfg, diagnosability.ModeMulti,
		diagnosability.WithFaultOrder(automaton.OrderNatural))
	require.NoError(t, err)

	assert.ElementsMatch(t, []diagnosability.ObserverKey{
		{State: 3, Label: diagnosability.NewFaultSet(1)},
		{State: 3, Label: diagnosability.NewFaultSet(1, 2)},
	}, obs.Successors(obs.Root, 'x'))
	assert.True(t, obs.Has(diagnosability.ObserverKey{State: 3, Label: diagnosability.NewFaultSet(1, 2)}))
}

func TestBuildObserver_SingleFadesOneStep(t *testing.T) {
	// Single mode looks through exactly one unobservable step and replaces
	// the label instead of accumulating it.
	a, cfg := fixture(t, "ab", "uv", false,
		edge{0, 'u', 1}, edge{1, 'a', 1}, edge{1, 'v', 2}, edge{2, 'b', 2})

	obs, err := diagnosability.BuildObserver(a, cfg, diagnosability.ModeSingle,
		diagnosability.WithFaultOrder(automaton.OrderNatural))
	require.NoError(t, err)

	f1 := diagnosability.ObserverKey{State: 1, Label: diagnosability.NewFaultSet(1)}
	f2 := diagnosability.ObserverKey{State: 2, Label: diagnosability.NewFaultSet(2)}
	assert.Equal(t, []diagnosability.ObserverEdge{{Symbol: 'a', To: f1}}, obs.Edges(obs.Root))
	assert.Equal(t, []diagnosability.ObserverKey{f2}, obs.Successors(f1, 'b'))
}
