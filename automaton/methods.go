// File: methods.go
// Role: transition-table mutation and read-only queries.
//
// Determinism:
//   - States() and Symbols() return ascending order.
//   - Transitions() returns a copy; callers may not mutate the table through it.
package automaton

import (
	"fmt"
	"sort"
)

// Root returns the initial state.
func (a *Automaton) Root() State { return a.root }

// AddState materializes s if missing and reports whether it was added.
// Complexity: O(1) amortized.
func (a *Automaton) AddState(s State) bool {
	if _, ok := a.delta[s]; ok {
		return false
	}
	a.delta[s] = make(map[Symbol]State)

	return true
}

// HasState reports whether s has been materialized.
func (a *Automaton) HasState(s State) bool {
	_, ok := a.delta[s]

	return ok
}

// AddTransition installs state --symbol--> next and reports whether it did.
//
// If symbol already has an outgoing transition from state the call is a
// no-op and returns false: the existing successor is kept, so the table stays
// deterministic. The source state is materialized when missing.
//
// Precondition: no range validation of state, symbol or next is performed;
// callers are responsible for passing ids and symbols of their Config.
//
// Complexity: O(1) amortized.
func (a *Automaton) AddTransition(state State, symbol Symbol, next State) bool {
	row, ok := a.delta[state]
	if !ok {
		row = make(map[Symbol]State)
		a.delta[state] = row
	}
	if _, used := row[symbol]; used {
		return false
	}
	row[symbol] = next

	return true
}

// Navigate returns δ(state, symbol).
// Returns ErrSymbolNotFound when the pair is undefined, including when the
// state itself is unknown.
// Complexity: O(1).
func (a *Automaton) Navigate(state State, symbol Symbol) (State, error) {
	row, ok := a.delta[state]
	if !ok {
		return 0, fmt.Errorf("automaton: state %d has no transitions (unknown state): %w", state, ErrSymbolNotFound)
	}
	next, ok := row[symbol]
	if !ok {
		return 0, fmt.Errorf("automaton: no transition %d --%s-->: %w", state, symbol, ErrSymbolNotFound)
	}

	return next, nil
}

// HasTransition reports whether symbol is used at state.
func (a *Automaton) HasTransition(state State, symbol Symbol) bool {
	_, ok := a.delta[state][symbol]

	return ok
}

// Symbols returns the symbols with an outgoing transition from state, in
// ascending order. Unknown states yield nil.
// Complexity: O(d log d) where d is the out-degree.
func (a *Automaton) Symbols(state State) []Symbol {
	row := a.delta[state]
	if len(row) == 0 {
		return nil
	}
	out := make([]Symbol, 0, len(row))
	for s := range row {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Transitions returns a copy of the outgoing row of state.
func (a *Automaton) Transitions(state State) map[Symbol]State {
	row := a.delta[state]
	out := make(map[Symbol]State, len(row))
	for s, n := range row {
		out[s] = n
	}

	return out
}

// States returns every materialized state in ascending order.
// Complexity: O(V log V).
func (a *Automaton) States() []State {
	out := make([]State, 0, len(a.delta))
	for s := range a.delta {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the number of materialized states.
func (a *Automaton) Len() int { return len(a.delta) }

// NumTransitions returns the total number of transitions.
// Complexity: O(V).
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, row := range a.delta {
		n += len(row)
	}

	return n
}

// Clone returns a deep copy of the automaton.
// Complexity: O(V+E).
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{root: a.root, delta: make(map[State]map[Symbol]State, len(a.delta))}
	for s, row := range a.delta {
		cr := make(map[Symbol]State, len(row))
		for sym, n := range row {
			cr[sym] = n
		}
		c.delta[s] = cr
	}

	return c
}

// Equal reports whether a and b have the same root and identical
// transition tables.
// Complexity: O(V+E).
func (a *Automaton) Equal(b *Automaton) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.root != b.root || len(a.delta) != len(b.delta) {
		return false
	}
	for s, row := range a.delta {
		other, ok := b.delta[s]
		if !ok || len(other) != len(row) {
			return false
		}
		for sym, n := range row {
			if m, ok := other[sym]; !ok || m != n {
				return false
			}
		}
	}

	return true
}

// Transition is one (From --Symbol--> To) edge of the table.
type Transition struct {
	From   State  `cbor:"1,keyasint"`
	Symbol Symbol `cbor:"2,keyasint"`
	To     State  `cbor:"3,keyasint"`
}

// Edges lists every transition ordered by (From, Symbol).
// Complexity: O(E log E).
func (a *Automaton) Edges() []Transition {
	out := make([]Transition, 0, a.NumTransitions())
	for _, s := range a.States() {
		for _, sym := range a.Symbols(s) {
			out = append(out, Transition{From: s, Symbol: sym, To: a.delta[s][sym]})
		}
	}

	return out
}

// FromEdges rebuilds an automaton from its root, its state list and its
// edges. States without outgoing edges are materialized from the list.
// A second edge for an already-used (From, Symbol) pair is rejected with
// ErrInvalidConfig.
func FromEdges(root State, states []State, edges []Transition) (*Automaton, error) {
	a := New(root)
	for _, s := range states {
		a.AddState(s)
	}
	for _, e := range edges {
		if !a.AddTransition(e.From, e.Symbol, e.To) {
			return nil, fmt.Errorf("automaton: FromEdges: duplicate transition %d --%s-->: %w", e.From, e.Symbol, ErrInvalidConfig)
		}
		a.AddState(e.To)
	}

	return a, nil
}
