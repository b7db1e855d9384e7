// SPDX-License-Identifier: MIT
// Package: desdiag/builder
//
// component.go - pointer-walk construction of one connected segment.
//
// Canonical model:
//   - The pointer starts at the segment root. At every step it adds one edge
//     to a randomly chosen unvisited id, then 1..3 edges to random ids of the
//     segment (itself included), then moves along a transition to an
//     unvisited id other than itself.
//   - When the last id is reached it gets 1..2 final random edges.
//
// Invariants:
//   - A freshly visited pointer has no outgoing edges, so the first edge
//     always succeeds and leads to an unvisited id. A pointer without a
//     viable continuation is a construction defect (ErrConstruction).
//   - All edges are observable and stay inside the segment.
//
// Complexity: O(n·|Σ|) per segment of n ids.

package builder

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/desdiag/automaton"
)

// components grows every segment laid out by initialize, except the extra
// segment, which attachExtra builds after the fault wiring.
func (b *build) components() error {
	for _, seg := range b.cfg.Segments {
		if seg.Kind == automaton.SegmentExtra {
			continue
		}
		if err := b.component(seg); err != nil {
			return err
		}
	}

	return nil
}

// component materializes [seg.Start, seg.End) and connects it from seg.Root().
func (b *build) component(seg automaton.Segment) error {
	size := seg.Len()
	for id := seg.Start; id < seg.End; id++ {
		b.a.AddState(id)
	}

	visited := make(map[automaton.State]bool, size)
	visited[seg.Root()] = true
	unvisited := make([]automaton.State, 0, size-1)
	for id := seg.Start + 1; id < seg.End; id++ {
		unvisited = append(unvisited, id)
	}
	randomID := func() automaton.State { return seg.Start + automaton.State(b.rng.Intn(size)) }

	p := seg.Root()
	for count := 1; count < size; {
		// 1) One edge to a fresh id, then 1..3 random edges.
		b.addRandomTransition(p, unvisited[b.rng.Intn(len(unvisited))])
		extra := b.rng.Intn(maxExtraEdges) + 1
		for i := 0; i < extra; i++ {
			b.addRandomTransition(p, randomID())
		}

		// 2) Move to an unvisited, non-self successor.
		var cands []automaton.Symbol
		for _, sym := range b.a.Symbols(p) {
			next, err := b.a.Navigate(p, sym)
			if err != nil {
				return err
			}
			if next != p && !visited[next] {
				cands = append(cands, sym)
			}
		}
		if len(cands) == 0 {
			return builderErrorf(methodBuild, ErrConstruction,
				"pointer %d in %s segment [%d,%d) has no unvisited successor", p, seg.Kind, seg.Start, seg.End)
		}
		next, err := b.a.Navigate(p, cands[b.rng.Intn(len(cands))])
		if err != nil {
			return err
		}
		p = next
		visited[p] = true
		if i := slices.Index(unvisited, p); i >= 0 {
			unvisited = slices.Delete(unvisited, i, i+1)
		}
		count++

		// 3) The last visited id gets 1..2 final edges.
		if count == size {
			final := b.rng.Intn(maxFinalEdges) + 1
			for i := 0; i < final; i++ {
				b.addRandomTransition(p, randomID())
			}
		}
	}

	b.log.Debug("component built",
		slog.String("kind", seg.Kind.String()),
		slog.Int("index", seg.Index),
		slog.Int("root", int(seg.Root())),
		slog.Int("size", size))

	return nil
}
