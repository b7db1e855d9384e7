// helpers.go - internal helpers shared by the construction phases.
//
// Design principles:
//   - Every random choice goes through b.rng.
//   - Candidate lists are built in a stable order (Config.Observable order or
//     ascending symbols) before drawing from them.

package builder

import (
	"github.com/katalvlaran/desdiag/automaton"
)

// addRandomTransition installs from --sym--> to with an observable symbol not
// yet used at from. A saturated node is skipped silently; the return value
// reports whether an edge was added.
func (b *build) addRandomTransition(from, to automaton.State) bool {
	free := b.freeObservable(from)
	if len(free) == 0 {
		return false
	}

	return b.a.AddTransition(from, free[b.rng.Intn(len(free))], to)
}

// freeObservable lists the observable symbols unused at s, in Config order.
func (b *build) freeObservable(s automaton.State) []automaton.Symbol {
	out := make([]automaton.Symbol, 0, len(b.cfg.Observable))
	for _, sym := range b.cfg.Observable {
		if !b.a.HasTransition(s, sym) {
			out = append(out, sym)
		}
	}

	return out
}

// observableOut lists the observable symbols used at s, ascending.
func (b *build) observableOut(s automaton.State) []automaton.Symbol {
	syms := b.a.Symbols(s)
	out := syms[:0:0]
	for _, sym := range syms {
		if b.cfg.IsObservable(sym) {
			out = append(out, sym)
		}
	}

	return out
}

// walk follows up to steps random observable transitions from `from` and
// returns the state it stops at. The walk ends early at a node without
// observable successors.
func (b *build) walk(from automaton.State, steps int) (automaton.State, error) {
	p := from
	for ; steps > 0; steps-- {
		syms := b.observableOut(p)
		if len(syms) == 0 {
			break
		}
		next, err := b.a.Navigate(p, syms[b.rng.Intn(len(syms))])
		if err != nil {
			return 0, err
		}
		p = next
	}

	return p, nil
}
