// SPDX-License-Identifier: MIT
// Package: desdiag/builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Build itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/desdiag/automaton"
)

// Option customizes one Build call by mutating a builderConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes construction records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithFaultOrder selects how fault symbols are assigned to fault segments.
// Panics on an unknown ordering.
func WithFaultOrder(o automaton.FaultOrder) Option {
	if !o.Valid() {
		panic("builder: WithFaultOrder(unknown)")
	}
	return func(c *builderConfig) {
		c.order = o
	}
}
