// SPDX-License-Identifier: MIT
// Package: desdiag/automaton
//
// config.go - construction record of a built automaton.
//
// Purpose:
//   - Describe the alphabet partition, sizes and mode flags of an automaton.
//   - Record the id ranges (segments) the builder allocated, for tooling/tests.
//
// Invariants (checked by Validate):
//   - Observable ∩ Unobservable = ∅, Observable ∪ Unobservable = Alphabet.
//   - len(FaultyEvents) = len(Unobservable) ≥ 1.
//   - Alphabet symbols are distinct letters of AlphabetSpace.

package automaton

import (
	"fmt"
	"strings"
)

// SegmentKind classifies a construction segment.
type SegmentKind int

const (
	// SegmentNormal is the main fault-free component containing the root.
	SegmentNormal SegmentKind = iota
	// SegmentFault is a component entered through exactly one fault symbol.
	SegmentFault
	// SegmentExtra is the optional second normal component.
	SegmentExtra
)

// String returns a stable lowercase name.
func (k SegmentKind) String() string {
	switch k {
	case SegmentNormal:
		return "normal"
	case SegmentFault:
		return "fault"
	case SegmentExtra:
		return "extra"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Segment is a half-open id range [Start, End) allocated to one component.
// Index is the fault segment ordinal (0-based); it is 0 for other kinds.
type Segment struct {
	Kind  SegmentKind `cbor:"1,keyasint"`
	Index int         `cbor:"2,keyasint"`
	Start State       `cbor:"3,keyasint"`
	End   State       `cbor:"4,keyasint"`
}

// Root returns the first id of the segment.
func (s Segment) Root() State { return s.Start }

// Contains reports whether id lies in [Start, End).
func (s Segment) Contains(id State) bool { return id >= s.Start && id < s.End }

// Len returns the number of ids in the segment.
func (s Segment) Len() int { return int(s.End - s.Start) }

// Config is the immutable construction record returned next to an Automaton.
type Config struct {
	StateSize       int        `cbor:"1,keyasint"`
	FaultyStateSize int        `cbor:"2,keyasint"`
	ExtraStateSize  int        `cbor:"3,keyasint"`
	Alphabet        []Symbol   `cbor:"4,keyasint"`
	FaultyEvents    []int      `cbor:"5,keyasint"`
	Observable      []Symbol   `cbor:"6,keyasint"`
	Unobservable    []Symbol   `cbor:"7,keyasint"`
	ExtraNormal     bool       `cbor:"8,keyasint"`
	MultiFaulty     bool       `cbor:"9,keyasint"`
	FaultOrder      FaultOrder `cbor:"10,keyasint"`
	Segments        []Segment  `cbor:"11,keyasint"`
}

// IsObservable reports whether sym is an observable symbol of the config.
func (c *Config) IsObservable(sym Symbol) bool {
	for _, o := range c.Observable {
		if o == sym {
			return true
		}
	}

	return false
}

// FaultIndex returns the position of sym in Unobservable, or -1 when sym is
// not a fault symbol.
func (c *Config) FaultIndex(sym Symbol) int {
	for i, u := range c.Unobservable {
		if u == sym {
			return i
		}
	}

	return -1
}

// NumFaults returns the number of fault symbols.
func (c *Config) NumFaults() int { return len(c.Unobservable) }

// TotalStates returns the number of allocated ids, extra segment included.
func (c *Config) TotalStates() int { return c.StateSize + c.ExtraStateSize }

// FaultSegments returns the fault segments in index order.
func (c *Config) FaultSegments() []Segment {
	var out []Segment
	for _, s := range c.Segments {
		if s.Kind == SegmentFault {
			out = append(out, s)
		}
	}

	return out
}

// SegmentOf returns the segment containing id.
func (c *Config) SegmentOf(id State) (Segment, bool) {
	for _, s := range c.Segments {
		if s.Contains(id) {
			return s, true
		}
	}

	return Segment{}, false
}

// Validate checks the partition invariants of the config.
// Returns an error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("automaton: Validate: nil config: %w", ErrInvalidConfig)
	}
	if len(c.Unobservable) == 0 {
		return fmt.Errorf("automaton: Validate: no fault symbols: %w", ErrInvalidConfig)
	}
	if len(c.FaultyEvents) != 0 && len(c.FaultyEvents) != len(c.Unobservable) {
		return fmt.Errorf("automaton: Validate: %d fault indexes for %d fault symbols: %w",
			len(c.FaultyEvents), len(c.Unobservable), ErrInvalidConfig)
	}
	if len(c.Observable)+len(c.Unobservable) != len(c.Alphabet) {
		return fmt.Errorf("automaton: Validate: partition sizes %d+%d != alphabet %d: %w",
			len(c.Observable), len(c.Unobservable), len(c.Alphabet), ErrInvalidConfig)
	}

	seen := make(map[Symbol]bool, len(c.Alphabet))
	for _, s := range c.Alphabet {
		if !strings.ContainsRune(AlphabetSpace, rune(s)) {
			return fmt.Errorf("automaton: Validate: symbol %q outside alphabet space: %w", rune(s), ErrInvalidConfig)
		}
		if seen[s] {
			return fmt.Errorf("automaton: Validate: duplicate symbol %s: %w", s, ErrInvalidConfig)
		}
		seen[s] = true
	}

	part := make(map[Symbol]bool, len(c.Alphabet))
	for _, s := range c.Observable {
		part[s] = true
	}
	for _, s := range c.Unobservable {
		if part[s] {
			return fmt.Errorf("automaton: Validate: symbol %s both observable and unobservable: %w", s, ErrInvalidConfig)
		}
		part[s] = true
	}
	for s := range part {
		if !seen[s] {
			return fmt.Errorf("automaton: Validate: symbol %s not in alphabet: %w", s, ErrInvalidConfig)
		}
	}
	if !c.FaultOrder.Valid() {
		return fmt.Errorf("automaton: Validate: unknown fault order %d: %w", int(c.FaultOrder), ErrInvalidConfig)
	}

	return nil
}

// Summary renders a human-readable description of the config.
func (c *Config) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "states: %d (faulty %d, extra %d)\n", c.StateSize, c.FaultyStateSize, c.ExtraStateSize)
	fmt.Fprintf(&b, "alphabet: %s\n", joinSymbols(c.Alphabet))
	fmt.Fprintf(&b, "fault indexes: %v\n", c.FaultyEvents)
	fmt.Fprintf(&b, "observable: %s\n", joinSymbols(c.Observable))
	fmt.Fprintf(&b, "unobservable: %s\n", joinSymbols(c.Unobservable))
	fmt.Fprintf(&b, "extra normal: %t, multi faulty: %t, fault order: %s\n", c.ExtraNormal, c.MultiFaulty, c.FaultOrder)
	for _, s := range c.Segments {
		if s.Kind == SegmentFault {
			fmt.Fprintf(&b, "segment %s#%d: [%d, %d)\n", s.Kind, s.Index, s.Start, s.End)
		} else {
			fmt.Fprintf(&b, "segment %s: [%d, %d)\n", s.Kind, s.Start, s.End)
		}
	}

	return b.String()
}

func joinSymbols(syms []Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = s.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
