package builder

import (
	"log/slog"

	"github.com/katalvlaran/desdiag/automaton"
)

// injectFaults attaches every fault segment to the normal segment: a random
// observable walk of rng.Intn(bound)+10 steps from the normal root, then one
// unobservable transition from the endpoint to the fault segment root.
func (b *build) injectFaults() error {
	bound := injectBoundSmall
	if b.cfg.StateSize > largeSystem {
		bound = injectBoundLarge
	}
	for _, seg := range b.cfg.FaultSegments() {
		from, err := b.walk(b.a.Root(), b.rng.Intn(bound)+injectMinSteps)
		if err != nil {
			return err
		}
		sym, err := b.order.SegmentSymbol(b.cfg, seg.Index)
		if err != nil {
			return builderErrorf(methodBuild, ErrConstruction, "fault segment %d: %v", seg.Index, err)
		}
		if !b.a.AddTransition(from, sym, seg.Root()) {
			return builderErrorf(methodBuild, ErrConstruction,
				"fault symbol %s already used at %d", sym, from)
		}
		b.log.Debug("fault injected",
			slog.Int("segment", seg.Index),
			slog.Int("from", int(from)),
			slog.String("symbol", sym.String()),
			slog.Int("to", int(seg.Root())))
	}

	return nil
}

// crossWire connects every ordered pair (i, j) of distinct fault segments:
// a walk of k+rng.Intn(6) steps inside segment i picks the connecting node,
// a walk of at most k steps inside segment j picks the target, and segment
// j's fault symbol is attached between them. A target that already has an
// unobservable transition straight back to the connecting node is skipped.
func (b *build) crossWire() error {
	faults := b.cfg.FaultSegments()
	k := len(faults)
	for _, si := range faults {
		for _, sj := range faults {
			if si.Index == sj.Index {
				continue
			}
			conn, err := b.walk(si.Root(), k+b.rng.Intn(crossSpread))
			if err != nil {
				return err
			}
			target, err := b.walk(sj.Root(), b.rng.Intn(k+1))
			if err != nil {
				return err
			}
			if b.unobservableBack(target, conn) {
				b.log.Debug("cross wiring rejected",
					slog.Int("from_segment", si.Index),
					slog.Int("to_segment", sj.Index),
					slog.Int("conn", int(conn)),
					slog.Int("target", int(target)))
				continue
			}
			sym, err := b.order.SegmentSymbol(b.cfg, sj.Index)
			if err != nil {
				return builderErrorf(methodBuild, ErrConstruction, "fault segment %d: %v", sj.Index, err)
			}
			added := b.a.AddTransition(conn, sym, target)
			b.log.Debug("cross wired",
				slog.Int("from_segment", si.Index),
				slog.Int("to_segment", sj.Index),
				slog.Int("conn", int(conn)),
				slog.String("symbol", sym.String()),
				slog.Int("target", int(target)),
				slog.Bool("added", added))
		}
	}

	return nil
}

// unobservableBack reports whether from has an unobservable transition to to.
func (b *build) unobservableBack(from, to automaton.State) bool {
	for _, sym := range b.a.Symbols(from) {
		if b.cfg.IsObservable(sym) {
			continue
		}
		if next, err := b.a.Navigate(from, sym); err == nil && next == to {
			return true
		}
	}

	return false
}

// attachExtra builds the recovery segment and wires one observable
// transition into it from every fault segment.
func (b *build) attachExtra() error {
	var extra automaton.Segment
	for _, s := range b.cfg.Segments {
		if s.Kind == automaton.SegmentExtra {
			extra = s
		}
	}
	if extra.Len() == 0 {
		return builderErrorf(methodBuild, ErrConstruction, "extra segment missing")
	}
	if err := b.component(extra); err != nil {
		return err
	}

	for _, seg := range b.cfg.FaultSegments() {
		from, err := b.walk(seg.Root(), b.rng.Intn(extraFaultWalk))
		if err != nil {
			return err
		}
		to, err := b.walk(extra.Root(), b.rng.Intn(extraNormalWalk))
		if err != nil {
			return err
		}
		if len(b.freeObservable(from)) == 0 {
			// Saturated endpoint: fall back to the first segment id with a
			// free observable symbol.
			from = b.firstFree(seg)
		}
		added := b.addRandomTransition(from, to)
		b.log.Debug("recovery wired",
			slog.Int("segment", seg.Index),
			slog.Int("from", int(from)),
			slog.Int("to", int(to)),
			slog.Bool("added", added))
	}

	return nil
}

// firstFree returns the smallest id of seg with an unused observable symbol,
// or the segment root when every id is saturated.
func (b *build) firstFree(seg automaton.Segment) automaton.State {
	for id := seg.Start; id < seg.End; id++ {
		if len(b.freeObservable(id)) > 0 {
			return id
		}
	}

	return seg.Root()
}
