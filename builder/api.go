// SPDX-License-Identifier: MIT
// Package: desdiag/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(min, max, extraNormal, multiFaulty, opts...).
//   - Options resolve into a builderConfig; no global state.
//   - Determinism: same bounds, flags and seed ⇒ identical automaton/config.
//   - Never panic at runtime; return ErrConstruction with context.

package builder

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/traverse"
)

// build carries the mutable state of one Build call.
type build struct {
	rng   *rand.Rand
	log   *slog.Logger
	order automaton.FaultOrder

	a   *automaton.Automaton
	cfg *automaton.Config
}

// Build constructs a random connected automaton with injected faults.
//
// The state size is drawn uniformly in [minStates, maxStates]. The ids are
// split into a normal segment [0, stateSize-faultyStateSize) and k fault
// segments; each fault segment is entered from the normal segment through
// exactly one unobservable transition. With multiFaulty the fault segments
// are also wired to each other by unobservable transitions; with extraNormal
// a recovery segment of stateSize/2 ids is appended and entered from every
// fault segment through an observable transition.
//
// Errors:
//   - ErrConstruction if minStates ≤ 10 or minStates ≥ maxStates, or if the
//     construction invariants (continuation, connectivity) are violated.
//
// Complexity: O(V·|Σ|) time, O(V+E) space.
func Build(minStates, maxStates int, extraNormal, multiFaulty bool, opts ...Option) (*automaton.Automaton, *automaton.Config, error) {
	// 1) Validate bounds before touching the RNG.
	if err := validateBounds(minStates, maxStates); err != nil {
		return nil, nil, err
	}

	// 2) Resolve configuration and prepare the construction state.
	bc := newBuilderConfig(opts...)
	b := &build{
		rng:   bc.rng,
		log:   bc.logger,
		order: bc.order,
		a:     automaton.New(0),
		cfg: &automaton.Config{
			ExtraNormal: extraNormal,
			MultiFaulty: multiFaulty,
			FaultOrder:  bc.order,
		},
	}
	start := time.Now()
	b.log.Info("building automaton",
		slog.Int("min_states", minStates),
		slog.Int("max_states", maxStates),
		slog.Bool("extra_normal", extraNormal),
		slog.Bool("multi_faulty", multiFaulty))

	// 3) Sizes, alphabet and fault symbols.
	b.initialize(minStates, maxStates)

	// 4) Normal and fault components.
	if err := b.components(); err != nil {
		return nil, nil, err
	}

	// 5) Inter-segment wiring.
	if err := b.injectFaults(); err != nil {
		return nil, nil, err
	}
	if multiFaulty {
		if err := b.crossWire(); err != nil {
			return nil, nil, err
		}
	}
	if extraNormal {
		if err := b.attachExtra(); err != nil {
			return nil, nil, err
		}
	}

	// 6) Self-check: every allocated id must be reachable from the root.
	if missing := traverse.Unreachable(b.a); len(missing) > 0 {
		return nil, nil, builderErrorf(methodBuild, ErrConstruction,
			"%d states unreachable from root (first %d)", len(missing), missing[0])
	}

	b.log.Info("automaton built",
		slog.Int("states", b.a.Len()),
		slog.Int("transitions", b.a.NumTransitions()),
		slog.Int("faults", b.cfg.NumFaults()),
		slog.Duration("elapsed", time.Since(start)))

	return b.a, b.cfg, nil
}
