package diagnosability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/desdiag/automaton"
)

type edge struct {
	from automaton.State
	sym  rune
	to   automaton.State
}

// fixture assembles an automaton rooted at 0 and a config whose alphabet is
// observable ++ unobservable.
func fixture(t *testing.T, observable, unobservable string, multi bool, edges ...edge) (*automaton.Automaton, *automaton.Config) {
	t.Helper()
	a := automaton.New(0)
	for _, e := range edges {
		a.AddState(e.to)
		require.True(t, a.AddTransition(e.from, automaton.Symbol(e.sym), e.to), "duplicate edge %v", e)
	}

	cfg := &automaton.Config{MultiFaulty: multi}
	for _, r := range observable {
		cfg.Alphabet = append(cfg.Alphabet, automaton.Symbol(r))
		cfg.Observable = append(cfg.Observable, automaton.Symbol(r))
	}
	for _, r := range unobservable {
		cfg.FaultyEvents = append(cfg.FaultyEvents, len(cfg.Alphabet))
		cfg.Alphabet = append(cfg.Alphabet, automaton.Symbol(r))
		cfg.Unobservable = append(cfg.Unobservable, automaton.Symbol(r))
	}
	cfg.StateSize = a.Len()
	require.NoError(t, cfg.Validate())

	return a, cfg
}
