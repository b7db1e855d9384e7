// Package diagnosability decides whether the faults of an automaton are
// diagnosable: whether, after any fault, every sufficiently long observable
// continuation makes the fault certain.
//
// What:
//
//   - BuildObserver: projects the automaton onto its observable symbols.
//     Observer nodes are (state, label) pairs; unobservable fault
//     transitions are faded and their tags carried into the label.
//   - Compose: self-composition of the observer from (root, root). A product
//     node pairs two runs with the same observable word.
//   - OnCycle: explicit-stack DFS deciding whether a product node lies on a
//     cycle.
//   - IsDiagnosable / IsDiagnosableSingle / IsDiagnosableMulti: the verdict.
//     The automaton is diagnosable iff no product node with differing labels
//     lies on a cycle.
//
// Why:
//
//   - A cycle through a label-mismatched product node is an infinite
//     observable continuation shared by a faulty and a non-faulty (or
//     differently faulty) run: the ambiguity never resolves.
//
// Keys:
//
//   - ObserverKey{State, Label} and CompositeKey{First, Second} are
//     comparable structs. Labels are FaultSet bit sets, so equal sets are
//     equal keys regardless of the order tags were discovered in. Every
//     derived node is expanded once.
//
// Options:
//
//   - WithFaultOrder: symbol → tag ordering (default: the one in Config).
//   - WithPairing: PairFirst (default) or PairAll for distinct components.
//   - WithContext, WithLogger, WithStats.
//
// Errors:
//
//   - ErrNilAutomaton        nil automaton, config or observer
//   - ErrTransitionNotFound  inconsistent observer during composition
//   - ErrUnknownSymbol       transition symbol outside the config alphabet
//   - automaton.ErrSymbolNotFound (wrapped) on an inconsistent automaton
//   - context errors on cancellation
package diagnosability
