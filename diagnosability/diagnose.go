package diagnosability

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/desdiag/automaton"
)

// IsDiagnosable decides whether every fault of a becomes certain from the
// observable events within a bounded delay. It uses the multi-fault
// algorithm when cfg.MultiFaulty is set and the single-fault one otherwise.
//
// The call is pure: derived graphs are built per call and discarded.
func IsDiagnosable(a *automaton.Automaton, cfg *automaton.Config, opts ...Option) (bool, error) {
	if cfg != nil && cfg.MultiFaulty {
		return IsDiagnosableMulti(a, cfg, opts...)
	}

	return IsDiagnosableSingle(a, cfg, opts...)
}

// IsDiagnosableSingle runs the single-fault check: observer labels are
// Normal or one fault tag.
func IsDiagnosableSingle(a *automaton.Automaton, cfg *automaton.Config, opts ...Option) (bool, error) {
	return check(a, cfg, ModeSingle, opts...)
}

// IsDiagnosableMulti runs the multi-fault check: observer labels are sets of
// fault tags accumulated along chains of unobservable transitions.
func IsDiagnosableMulti(a *automaton.Automaton, cfg *automaton.Config, opts ...Option) (bool, error) {
	return check(a, cfg, ModeMulti, opts...)
}

// check builds the observer, composes it with itself and looks for a
// label-mismatched product node on a cycle.
func check(a *automaton.Automaton, cfg *automaton.Config, mode Mode, opts ...Option) (bool, error) {
	// 1) Validate input.
	if a == nil || cfg == nil {
		return false, ErrNilAutomaton
	}
	o := newOptions(opts...)
	log := o.logger.With(slog.String("mode", mode.String()))

	// 2) Observer.
	obs, err := buildObserver(o, a, cfg, mode)
	if err != nil {
		return false, fmt.Errorf("diagnosability: %s check: %w", mode, err)
	}
	log.Debug("observer built", slog.Int("nodes", obs.Len()), slog.Int("edges", obs.NumEdges()))

	// 3) Self-composition.
	p, err := compose(o, obs)
	if err != nil {
		return false, fmt.Errorf("diagnosability: %s check: %w", mode, err)
	}
	mismatched := p.Mismatched()
	log.Debug("product built",
		slog.Int("nodes", p.Len()),
		slog.Int("edges", p.NumEdges()),
		slog.Int("mismatched", len(mismatched)))

	if o.stats != nil {
		*o.stats = Stats{
			ObserverNodes:  obs.Len(),
			ObserverEdges:  obs.NumEdges(),
			CompositeNodes: p.Len(),
			CompositeEdges: p.NumEdges(),
			Mismatched:     len(mismatched),
		}
	}

	// 4) Verdict.
	for _, k := range mismatched {
		select {
		case <-o.ctx.Done():
			return false, o.ctx.Err()
		default:
		}
		if p.OnCycle(k) {
			log.Debug("ambiguous cycle", slog.String("node", k.String()))
			return false, nil
		}
	}

	return true, nil
}
