// Package traces samples labelled running logs from an automaton.
//
// A running log is a random walk from the root. Unobservable symbols are
// projected out of the recorded observation and determine the label:
//
//   - single-fault systems: T0 when no fault symbol occurred, otherwise
//     T(i+1) for the first Unobservable[i] present;
//   - multi-fault systems: the bitmask Σ flag_i·2^(k-i-1) over the fault
//     symbols that occurred.
//
// Logs are collected into a Dataset keyed by observation. An observation
// that shows up with two different labels carries no information for a
// classifier and is dropped for good (conflict removal).
//
// A Dataset renders as a header line followed by one "<observation>T<label>"
// line per log, sorted:
//
//	Logs size: 3, Normal logs: 2, T1 logs: 1,minLen:10,maxLen:20 observable events:[a,b]
//	aab...T0
package traces
