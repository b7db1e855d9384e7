// Package builder synthesizes random, connected, fault-injected deterministic
// automata for diagnosability experiments.
//
// A single entry point, Build, draws the sizes and the alphabet, partitions the
// state ids into one normal segment and k fault segments, grows a connected
// component inside every segment, and then wires the segments together:
//
//   - Configuration primitives:
//     – Option:        a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG, the logger and the fault ordering.
//   - Construction phases (see api.go for the contract):
//     – initialize:    state size, fault-state size, alphabet, fault symbols.
//     – component:     pointer walk that reaches every id of a segment.
//     – injectFaults:  one unobservable transition per fault segment.
//     – crossWire:     multi-fault mode, fault segment → fault segment.
//     – attachExtra:   extra-normal mode, fault segment → recovery segment.
//   - Validation helpers:
//     – validateBounds: minStates > MinStatesExclusive and min < max.
//
// Guarantees:
//
//   - Determinism: every random draw of one Build comes from one *rand.Rand,
//     and every iteration over symbols is sorted, so equal seeds give
//     identical transition tables.
//   - Connectivity: every allocated id is reachable from the normal root;
//     Build verifies this before returning.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     Build itself never panics and returns ErrConstruction on bad bounds.
package builder
