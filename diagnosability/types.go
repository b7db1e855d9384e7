// types.go - derived node identities, labels and sentinel errors used by
// the observer and the composite product.

package diagnosability

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/desdiag/automaton"
)

var (
	// ErrNilAutomaton is returned when a nil automaton or config is passed.
	ErrNilAutomaton = errors.New("diagnosability: automaton or config is nil")

	// ErrTransitionNotFound indicates the composition could not find an
	// expected continuation of an observer node. It signals an inconsistent
	// observer and is always returned to the caller.
	ErrTransitionNotFound = errors.New("diagnosability: target transition not found")

	// ErrUnknownSymbol indicates a transition symbol that is neither
	// observable nor a fault symbol of the config.
	ErrUnknownSymbol = errors.New("diagnosability: symbol outside the config alphabet")
)

// MaxTag is the largest fault tag a FaultSet can hold.
const MaxTag = 32

// FaultSet is a set of 1-based fault tags. The empty set is the Normal label.
// Bit tag-1 is set when tag is a member, so equal sets are equal values.
type FaultSet uint32

// Normal is the empty label.
const Normal FaultSet = 0

// NewFaultSet returns the set holding tags; out-of-range tags are ignored.
func NewFaultSet(tags ...int) FaultSet {
	var s FaultSet
	for _, t := range tags {
		s = s.Add(t)
	}

	return s
}

// Add returns s ∪ {tag}. Tags outside [1, MaxTag] leave s unchanged.
func (s FaultSet) Add(tag int) FaultSet {
	if tag < 1 || tag > MaxTag {
		return s
	}

	return s | 1<<(tag-1)
}

// Has reports whether tag is a member.
func (s FaultSet) Has(tag int) bool {
	if tag < 1 || tag > MaxTag {
		return false
	}

	return s&(1<<(tag-1)) != 0
}

// Union returns s ∪ o.
func (s FaultSet) Union(o FaultSet) FaultSet { return s | o }

// IsNormal reports whether the set is empty.
func (s FaultSet) IsNormal() bool { return s == Normal }

// Len returns the number of tags.
func (s FaultSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Tags returns the members in ascending order.
func (s FaultSet) Tags() []int {
	out := make([]int, 0, s.Len())
	for t := 1; t <= MaxTag; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}

	return out
}

// String renders "N" for Normal and "{F1,F3}" otherwise; tags are sorted.
func (s FaultSet) String() string {
	if s.IsNormal() {
		return "N"
	}
	parts := make([]string, 0, s.Len())
	for _, t := range s.Tags() {
		parts = append(parts, "F"+strconv.Itoa(t))
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// ObserverKey identifies an observer node: a source state paired with the
// fault label believed active on arrival.
type ObserverKey struct {
	State automaton.State
	Label FaultSet
}

// String renders "state:label".
func (k ObserverKey) String() string { return fmt.Sprintf("%d:%s", k.State, k.Label) }

func (k ObserverKey) less(o ObserverKey) bool {
	if k.State != o.State {
		return k.State < o.State
	}

	return k.Label < o.Label
}

// CompositeKey identifies a node of the self-composition: two observer
// nodes reached by the same observable word.
type CompositeKey struct {
	First  ObserverKey
	Second ObserverKey
}

// String renders "(first|second)".
func (k CompositeKey) String() string { return "(" + k.First.String() + "|" + k.Second.String() + ")" }

// Mismatched reports whether the two labels differ.
func (k CompositeKey) Mismatched() bool { return k.First.Label != k.Second.Label }

func (k CompositeKey) less(o CompositeKey) bool {
	if k.First != o.First {
		return k.First.less(o.First)
	}

	return k.Second.less(o.Second)
}

// Mode selects how unobservable transitions are faded.
type Mode int

const (
	// ModeSingle fades one unobservable step and replaces the label by
	// the singleton of its tag.
	ModeSingle Mode = iota
	// ModeMulti fades chains of unobservable steps, accumulating tags.
	ModeMulti
)

// String returns "single" or "multi".
func (m Mode) String() string {
	if m == ModeMulti {
		return "multi"
	}

	return "single"
}

// Pairing selects which successor pairs a composite node with distinct
// components expands to.
type Pairing int

const (
	// PairFirst joins the first successor of each side per common symbol.
	PairFirst Pairing = iota
	// PairAll enumerates every successor pair per common symbol.
	PairAll
)

// String returns "first" or "all".
func (p Pairing) String() string {
	if p == PairAll {
		return "all"
	}

	return "first"
}

// Stats reports the sizes of the derived graphs of one check.
type Stats struct {
	ObserverNodes  int
	ObserverEdges  int
	CompositeNodes int
	CompositeEdges int
	Mismatched     int
}
