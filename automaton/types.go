// SPDX-License-Identifier: MIT
// Package: desdiag/automaton
//
// types.go - State, Symbol, Automaton and the sentinel errors of the model.

package automaton

import (
	"errors"
	"fmt"
)

// Sentinel errors for automaton operations.
var (
	// ErrSymbolNotFound indicates Navigate was asked for a (state, symbol)
	// pair that has no transition.
	ErrSymbolNotFound = errors.New("automaton: symbol of transition not found")

	// ErrStateNotFound indicates an operation referenced a state that does
	// not exist in the automaton.
	ErrStateNotFound = errors.New("automaton: state not found")

	// ErrInvalidConfig indicates a Config whose alphabet partition or sizes
	// are inconsistent.
	ErrInvalidConfig = errors.New("automaton: invalid config")
)

// State identifies one state of an automaton. Ids are unique within an
// automaton; the builder allocates them densely starting from 0.
type State int

// Symbol is one event label. Built automata draw symbols from the
// lowercase latin letters.
type Symbol rune

// String renders the symbol as its letter.
func (s Symbol) String() string { return string(rune(s)) }

// AlphabetSpace is the fixed space of letters from which alphabets are drawn.
const AlphabetSpace = "abcdefghijklmnopqrstuvwxyz"

// Automaton is a deterministic finite-state machine: a root state and a
// transition table mapping (state, symbol) to at most one successor.
type Automaton struct {
	root State

	// delta[state][symbol] = next state.
	delta map[State]map[Symbol]State
}

// New creates an automaton whose root state is already materialized.
// Complexity: O(1).
func New(root State) *Automaton {
	a := &Automaton{delta: make(map[State]map[Symbol]State)}
	a.root = root
	a.delta[root] = make(map[Symbol]State)

	return a
}

// Navigate is the package-level form of (*Automaton).Navigate, matching the
// external surface used by trace samplers and persistence round-trips.
func Navigate(a *Automaton, state State, symbol Symbol) (State, error) {
	if a == nil {
		return 0, fmt.Errorf("automaton: Navigate on nil automaton: %w", ErrStateNotFound)
	}

	return a.Navigate(state, symbol)
}
