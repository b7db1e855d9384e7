// SPDX-License-Identifier: MIT
// Package: desdiag/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng    = nil → time-seeded once per Build call
//   • logger = discard
//   • order  = automaton.OrderReversed

package builder

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/desdiag/automaton"
)

// builderConfig aggregates all knobs used by one Build call.
type builderConfig struct {
	rng    *rand.Rand
	logger *slog.Logger
	order  automaton.FaultOrder
}

// newBuilderConfig applies options in order (later overrides earlier) and
// resolves the RNG when none was supplied.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger: slog.New(slog.DiscardHandler),
		order:  automaton.OrderReversed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
