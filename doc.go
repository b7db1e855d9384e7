// Package desdiag builds random discrete-event systems with injected faults
// and decides whether those faults are diagnosable.
//
// 🚀 What is desdiag?
//
//	A small toolkit around one question: after an unobservable fault, do
//	the observable events always reveal it within a bounded delay?
//		• Random topology: connected deterministic automata with k fault
//		  segments, optional fault cross-wiring and a recovery segment
//		• Diagnosability: observer, self-composition, cycle search over
//		  label-mismatched pairs (single- and multi-fault variants)
//		• Tooling: trace sampling, persistence, metrics and a CLI
//
// Under the hood the packages are layered, leaves first:
//
//	automaton/      - State, Symbol, Automaton, Config, FaultOrder
//	traverse/       - BFS with hooks, reachability
//	builder/        - Build(min, max, extraNormal, multiFaulty, opts...)
//	diagnosability/ - BuildObserver, Compose, OnCycle, IsDiagnosable
//	reference/      - the 8-state EGR system and its online check
//	traces/         - labelled running-log sampler and dataset writer
//	store/          - CBOR + snappy records on disk
//	metrics/        - Prometheus collectors
//	generator/      - rebuild until diagnosable
//	appconfig/      - YAML config, validated
//	cmd/desdiag/    - build, check, sample, info, list, egr
//
// Quick example:
//
//	a, cfg, err := builder.Build(11, 40, false, true, builder.WithSeed(42))
//	if err != nil { ... }
//	ok, err := diagnosability.IsDiagnosable(a, cfg)
//
//	go install github.com/katalvlaran/desdiag/cmd/desdiag@latest
package desdiag
