// SPDX-License-Identifier: MIT
// Package: desdiag/builder
//
// config_test.go - internal tests for builderConfig defaults and option order.

package builder

import (
	"log/slog"
	"math/rand"
	"testing"

	"github.com/katalvlaran/desdiag/automaton"
)

// TestConfigDefaults verifies the zero-option configuration.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng == nil {
		t.Fatal("default rng: expected a time-seeded RNG, got nil")
	}
	if cfg.logger == nil {
		t.Fatal("default logger: expected discard logger, got nil")
	}
	if cfg.order != automaton.OrderReversed {
		t.Errorf("default order: expected OrderReversed, got %v", cfg.order)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and override order.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. WithRand should install the given RNG as is
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 2. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfgSeed1.rng.Int63(), cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfgSeed2.rng.Int63(), cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}

	// 3. Later options override earlier ones
	cfgOverride := newBuilderConfig(WithSeed(1), WithRand(expRNG))
	if cfgOverride.rng != expRNG {
		t.Errorf("override: expected WithRand to win, got %v", cfgOverride.rng)
	}
}

// TestOptionPanics verifies that meaningless option inputs panic at
// construction time.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)":         func() { WithRand(nil) },
		"WithLogger(nil)":       func() { WithLogger(nil) },
		"WithFaultOrder(bogus)": func() { WithFaultOrder(automaton.FaultOrder(99)) },
	}
	for name, fn := range cases {
		fn := fn
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		})
	}
}

// TestLoggerAndOrderOptions verifies the remaining setters.
func TestLoggerAndOrderOptions(t *testing.T) {
	t.Parallel()

	l := slog.New(slog.DiscardHandler)
	cfg := newBuilderConfig(WithLogger(l), WithFaultOrder(automaton.OrderNatural))
	if cfg.logger != l {
		t.Errorf("WithLogger: expected %p, got %p", l, cfg.logger)
	}
	if cfg.order != automaton.OrderNatural {
		t.Errorf("WithFaultOrder: expected OrderNatural, got %v", cfg.order)
	}
}
