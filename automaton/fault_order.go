package automaton

import "fmt"

// FaultOrder selects how fault symbols are paired with fault segments and
// fault tags.
//
// Under OrderReversed, fault segment i (0-based) is entered through
// Unobservable[k-1-i] and symbol Unobservable[j] carries tag k-j. Under
// OrderNatural, segment i uses Unobservable[i] and Unobservable[j] carries
// tag j+1. In both orders segment i ends up tagged F(i+1).
type FaultOrder int

const (
	// OrderReversed is the default ordering.
	OrderReversed FaultOrder = iota
	// OrderNatural pairs symbols, segments and tags by position.
	OrderNatural
)

// String returns "reversed" or "natural".
func (o FaultOrder) String() string {
	switch o {
	case OrderReversed:
		return "reversed"
	case OrderNatural:
		return "natural"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseFaultOrder parses the String form; the empty string yields the default.
func ParseFaultOrder(s string) (FaultOrder, error) {
	switch s {
	case "", "reversed":
		return OrderReversed, nil
	case "natural":
		return OrderNatural, nil
	default:
		return 0, fmt.Errorf("automaton: ParseFaultOrder(%q): %w", s, ErrInvalidConfig)
	}
}

// Valid reports whether o is a known ordering.
func (o FaultOrder) Valid() bool { return o == OrderReversed || o == OrderNatural }

// SegmentSymbol returns the fault symbol attached to fault segment i.
// An out-of-range i yields ErrInvalidConfig.
func (o FaultOrder) SegmentSymbol(cfg *Config, i int) (Symbol, error) {
	k := cfg.NumFaults()
	if i < 0 || i >= k {
		return 0, fmt.Errorf("automaton: SegmentSymbol(%d) with %d faults: %w", i, k, ErrInvalidConfig)
	}
	if o == OrderNatural {
		return cfg.Unobservable[i], nil
	}

	return cfg.Unobservable[k-1-i], nil
}

// Tag maps a fault symbol to its 1-based fault tag; ok is false when sym is
// observable or unknown.
func (o FaultOrder) Tag(cfg *Config, sym Symbol) (tag int, ok bool) {
	idx := cfg.FaultIndex(sym)
	if idx < 0 {
		return 0, false
	}
	if o == OrderNatural {
		return idx + 1, true
	}

	return cfg.NumFaults() - idx, true
}
