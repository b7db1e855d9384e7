// Package generator produces diagnosable automata by rebuilding until the
// diagnosability check accepts one.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/builder"
	"github.com/katalvlaran/desdiag/diagnosability"
)

// ErrAttemptsExhausted is returned when no diagnosable automaton was built
// within the attempt budget.
var ErrAttemptsExhausted = errors.New("generator: attempts exhausted")

// Result is one accepted automaton.
type Result struct {
	Automaton *automaton.Automaton
	Config    *automaton.Config
	// Attempts counts every build of the run, the accepted one included.
	Attempts int
	// Stats describes the derived graphs of the accepted check.
	Stats diagnosability.Stats
}

// Generator holds the build bounds and policy of a generation run.
// A Generator shares one random source across runs and is not safe for
// concurrent use.
type Generator struct {
	minStates, maxStates int
	c                    config
}

// New returns a generator for automata of minStates..maxStates states.
// Bounds are checked by the first build.
func New(minStates, maxStates int, opts ...Option) *Generator {
	return &Generator{minStates: minStates, maxStates: maxStates, c: newConfig(opts...)}
}

// Generate builds automata until one is diagnosable.
//
// Errors:
//   - builder.ErrConstruction from the first failing build; never retried.
//   - ErrAttemptsExhausted after MaxAttempts non-diagnosable builds.
//   - ctx.Err() on cancellation.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	mode := diagnosability.ModeSingle
	if g.c.multiFaulty {
		mode = diagnosability.ModeMulti
	}
	log := g.c.logger.With(slog.String("mode", mode.String()))

	for attempt := 1; attempt <= g.c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 1) Build.
		start := time.Now()
		a, cfg, err := builder.Build(g.minStates, g.maxStates, g.c.extraNormal, g.c.multiFaulty,
			builder.WithRand(g.c.rng),
			builder.WithLogger(g.c.logger),
			builder.WithFaultOrder(g.c.order))
		if g.c.metrics != nil {
			g.c.metrics.RecordBuild(g.c.multiFaulty, err, time.Since(start))
		}
		if err != nil {
			return nil, fmt.Errorf("generator: attempt %d: %w", attempt, err)
		}

		// 2) Check.
		var st diagnosability.Stats
		start = time.Now()
		ok, err := diagnosability.IsDiagnosable(a, cfg,
			diagnosability.WithContext(ctx),
			diagnosability.WithLogger(g.c.logger),
			diagnosability.WithPairing(g.c.pairing),
			diagnosability.WithStats(&st))
		if err != nil {
			return nil, fmt.Errorf("generator: attempt %d: %w", attempt, err)
		}
		if g.c.metrics != nil {
			g.c.metrics.RecordCheck(g.c.multiFaulty, ok, time.Since(start), st)
		}

		// 3) Accept or drop.
		if ok {
			if g.c.metrics != nil {
				g.c.metrics.RecordGenerate(attempt)
			}
			log.Info("diagnosable automaton generated",
				slog.Int("attempts", attempt),
				slog.Int("states", cfg.TotalStates()),
				slog.Int("faults", cfg.NumFaults()))
			return &Result{Automaton: a, Config: cfg, Attempts: attempt, Stats: st}, nil
		}
		log.Debug("dropped non-diagnosable automaton",
			slog.Int("attempt", attempt),
			slog.Int("states", cfg.TotalStates()),
			slog.Int("composite_nodes", st.CompositeNodes))
	}

	log.Warn("no diagnosable automaton", slog.Int("attempts", g.c.maxAttempts))
	return nil, fmt.Errorf("generator: %d attempts: %w", g.c.maxAttempts, ErrAttemptsExhausted)
}
