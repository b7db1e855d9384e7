package builder

import (
	"log/slog"

	"github.com/katalvlaran/desdiag/automaton"
)

// initialize draws the sizes, the alphabet and the fault symbols, and lays
// out the segments of the state id space.
func (b *build) initialize(minStates, maxStates int) {
	c := b.cfg

	// Sizes.
	c.StateSize = b.rng.Intn(maxStates-minStates+1) + minStates
	c.FaultyStateSize = max(c.StateSize/faultShare, minFaultyStates)
	b.log.Debug("sizes drawn",
		slog.Int("state_size", c.StateSize),
		slog.Int("faulty_state_size", c.FaultyStateSize))

	// Alphabet: letters sampled without replacement from the alphabet space.
	base := alphabetBaseSmall
	if c.StateSize > largeSystem {
		base = alphabetBaseLarge
	}
	alphabetSize := b.rng.Intn(alphabetSpread) + base
	space := []rune(automaton.AlphabetSpace)
	taken := make([]bool, len(space))
	c.Alphabet = make([]automaton.Symbol, alphabetSize)
	for i := range c.Alphabet {
		idx := b.rng.Intn(len(space))
		for taken[idx] {
			idx = b.rng.Intn(len(space))
		}
		taken[idx] = true
		c.Alphabet[i] = automaton.Symbol(space[idx])
	}

	// Fault count.
	k := max(c.FaultyStateSize/2, minFaults)
	if k > maxFaultsDefault {
		k = maxFaultsDefault
	}
	if alphabetSize > richAlphabet && c.FaultyStateSize/k > wideSegment {
		k += b.rng.Intn(2) + 1
	}

	// Fault symbol positions, in draw order.
	chosen := make([]bool, alphabetSize)
	c.FaultyEvents = make([]int, k)
	for i := range c.FaultyEvents {
		idx := b.rng.Intn(alphabetSize)
		for chosen[idx] {
			idx = b.rng.Intn(alphabetSize)
		}
		chosen[idx] = true
		c.FaultyEvents[i] = idx
	}

	// Partition, keeping alphabet order.
	c.Observable = make([]automaton.Symbol, 0, alphabetSize-k)
	c.Unobservable = make([]automaton.Symbol, 0, k)
	for i, s := range c.Alphabet {
		if chosen[i] {
			c.Unobservable = append(c.Unobservable, s)
		} else {
			c.Observable = append(c.Observable, s)
		}
	}
	b.log.Debug("alphabet drawn",
		slog.String("alphabet", symbolsString(c.Alphabet)),
		slog.Any("fault_indexes", c.FaultyEvents),
		slog.String("observable", symbolsString(c.Observable)),
		slog.String("unobservable", symbolsString(c.Unobservable)))

	// Segments: normal first, then k fault segments of faultyStateSize/k ids,
	// the last one absorbing the remainder.
	normalEnd := automaton.State(c.StateSize - c.FaultyStateSize)
	c.Segments = append(c.Segments, automaton.Segment{Kind: automaton.SegmentNormal, Start: 0, End: normalEnd})
	steps := c.FaultyStateSize / k
	for i := 0; i < k; i++ {
		start := int(normalEnd) + i*steps
		c.Segments = append(c.Segments, automaton.Segment{
			Kind:  automaton.SegmentFault,
			Index: i,
			Start: automaton.State(start),
			End:   automaton.State(start + steps),
		})
	}
	c.Segments[len(c.Segments)-1].End = automaton.State(c.StateSize)
	if c.ExtraNormal {
		c.ExtraStateSize = c.StateSize / 2
		c.Segments = append(c.Segments, automaton.Segment{
			Kind:  automaton.SegmentExtra,
			Start: automaton.State(c.StateSize),
			End:   automaton.State(c.StateSize + c.ExtraStateSize),
		})
	}
	for _, s := range c.Segments {
		b.log.Debug("segment laid out",
			slog.String("kind", s.Kind.String()),
			slog.Int("index", s.Index),
			slog.Int("start", int(s.Start)),
			slog.Int("end", int(s.End)))
	}
}

func symbolsString(syms []automaton.Symbol) string {
	out := make([]rune, len(syms))
	for i, s := range syms {
		out[i] = rune(s)
	}

	return string(out)
}
