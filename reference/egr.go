// SPDX-License-Identifier: MIT
// Package: desdiag/reference
//
// egr.go - the exhaust gas recirculation (EGR) reference system.
//
// Eight states 1..8 over the alphabet a..f. The fault event is c (3→4 and
// 7→8); d is a hidden control event that running logs never show. States
// split into the partitions {1,2,3,5,6,7} (normal) and {4,8} (faulty); the
// output map h is 0 on 1..6 and 1 on 7, 8.
//
// The diagnosability engine needs unobservable = fault symbols, so Config
// lists c as the only unobservable symbol and keeps d observable.

package reference

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/diagnosability"
)

const (
	// NumStates is the number of EGR states; ids run from 1 to NumStates.
	NumStates = 8

	// FaultSymbol is the only fault event.
	FaultSymbol automaton.Symbol = 'c'

	// HiddenSymbol never appears in running logs.
	HiddenSymbol automaton.Symbol = 'd'
)

// ErrUnknownState is returned for a root outside 1..NumStates.
var ErrUnknownState = errors.New("reference: unknown EGR state")

var (
	normalPartition = []automaton.State{1, 2, 3, 5, 6, 7}
	faultPartition  = []automaton.State{4, 8}
)

// table lists the transitions of every state; one entry per target.
var table = map[automaton.State][]struct {
	syms string
	to   automaton.State
}{
	1: {{"abf", 1}, {"e", 5}},
	2: {{"bf", 2}, {"d", 1}, {"e", 6}, {"a", 3}},
	3: {{"af", 3}, {"b", 2}, {"e", 7}, {"c", 4}},
	4: {{"abf", 4}, {"e", 8}},
	5: {{"abe", 5}, {"f", 1}},
	6: {{"be", 6}, {"f", 2}, {"d", 5}, {"a", 7}},
	7: {{"ae", 7}, {"b", 6}, {"f", 3}, {"c", 8}},
	8: {{"abe", 8}, {"f", 4}},
}

// EGR returns the reference automaton rooted at root.
func EGR(root automaton.State) (*automaton.Automaton, error) {
	if root < 1 || root > NumStates {
		return nil, fmt.Errorf("reference: EGR(%d): %w", root, ErrUnknownState)
	}
	a := automaton.New(root)
	for s := automaton.State(1); s <= NumStates; s++ {
		a.AddState(s)
		for _, row := range table[s] {
			for _, r := range row.syms {
				a.AddTransition(s, automaton.Symbol(r), row.to)
			}
		}
	}

	return a, nil
}

// Config returns the engine view of the EGR alphabet: c unobservable, every
// other letter observable.
func Config() *automaton.Config {
	return &automaton.Config{
		StateSize:       NumStates,
		FaultyStateSize: len(faultPartition),
		Alphabet:        []automaton.Symbol{'a', 'b', 'c', 'd', 'e', 'f'},
		FaultyEvents:    []int{2},
		Observable:      []automaton.Symbol{'a', 'b', 'd', 'e', 'f'},
		Unobservable:    []automaton.Symbol{FaultSymbol},
	}
}

// Output is the state output map h: 1 for states 7 and 8, 0 otherwise.
func Output(s automaton.State) int {
	if s == 7 || s == 8 {
		return 1
	}

	return 0
}

// Faulty reports whether s lies in the faulty partition {4, 8}.
func Faulty(s automaton.State) bool { return slices.Contains(faultPartition, s) }

// Diagnosable runs the diagnosability engine on the EGR system rooted at root.
func Diagnosable(root automaton.State, opts ...diagnosability.Option) (bool, error) {
	a, err := EGR(root)
	if err != nil {
		return false, err
	}

	return diagnosability.IsDiagnosable(a, Config(), opts...)
}

// OnlineDiagnosable decides whether a running log pins the system to one
// partition. The initial state is unknown, so the estimate starts from every
// state; HiddenSymbol is skipped and every other letter moves the estimate.
// The log is ambiguous when two estimated states share an output but lie in
// different partitions. A log no state can produce is trivially diagnosable.
func OnlineDiagnosable(log string) bool {
	a, _ := EGR(1)
	est := a.States()
	for _, r := range log {
		sym := automaton.Symbol(r)
		if sym == HiddenSymbol {
			continue
		}
		var next []automaton.State
		for _, s := range est {
			to, err := a.Navigate(s, sym)
			if err == nil && !slices.Contains(next, to) {
				next = append(next, to)
			}
		}
		est = next
	}

	for i, x := range est {
		for _, y := range est[i+1:] {
			if Output(x) == Output(y) && Faulty(x) != Faulty(y) {
				return false
			}
		}
	}

	return true
}
