// Package automaton defines the deterministic finite-state model shared by
// every other desdiag package: State, Symbol, the Automaton transition table
// and the immutable Config record that describes how an automaton was built.
//
// What:
//
//   - Automaton: a root state plus a deterministic transition function
//     δ(state, symbol) → state. At most one successor exists per pair;
//     AddTransition never overwrites an already-used symbol.
//   - Config: sizes, alphabet, the observable/unobservable partition and the
//     mode flags (ExtraNormal, MultiFaulty) recorded at construction time.
//   - FaultOrder: the two explicit fault-symbol ↔ fault-tag orderings
//     (OrderReversed, OrderNatural).
//
// Why:
//
//   - Discrete-event systems with faults are modeled as DFAs over an alphabet
//     whose unobservable symbols are exactly the fault events. Builders
//     populate the table once; diagnosers, trace samplers and persistence
//     only read it.
//
// Determinism:
//
//   - States() and Symbols() enumerate in ascending order, so any algorithm
//     iterating them with a seeded generator reproduces identical results.
//
// Errors:
//
//   - ErrSymbolNotFound  navigating an undefined (state, symbol) pair
//   - ErrStateNotFound   referencing a state that was never materialized
//   - ErrInvalidConfig   Config violates its partition invariants
//
// Concurrency:
//
//   - An Automaton is not guarded by locks. It is populated by a single
//     builder goroutine and frozen once returned; concurrent readers are safe
//     after that point.
package automaton
