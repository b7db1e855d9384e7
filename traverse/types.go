// types.go - tunable options and error definitions for breadth-first search
// over an automaton.Automaton.

package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/desdiag/automaton"
)

// Sentinel errors for traversal.
var (
	// ErrStartNotFound is returned when the start state is absent.
	ErrStartNotFound = errors.New("traverse: start state not found")

	// ErrNilAutomaton is returned if a nil automaton pointer is passed.
	ErrNilAutomaton = errors.New("traverse: automaton is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s automaton.State, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterSymbol can skip transitions by returning false.
	// Called for each transition curr --sym--> next.
	FilterSymbol func(curr automaton.State, sym automaton.Symbol, next automaton.State) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnVisit:      func(automaton.State, int) error { return nil },
		FilterSymbol: func(automaton.State, automaton.Symbol, automaton.State) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(s automaton.State, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterSymbol skips transitions for which fn returns false.
func WithFilterSymbol(fn func(curr automaton.State, sym automaton.Symbol, next automaton.State) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterSymbol = fn
		}
	}
}

// WithSymbols restricts the walk to transitions labelled by one of syms.
func WithSymbols(syms []automaton.Symbol) Option {
	allowed := make(map[automaton.Symbol]bool, len(syms))
	for _, s := range syms {
		allowed[s] = true
	}

	return WithFilterSymbol(func(_ automaton.State, sym automaton.Symbol, _ automaton.State) bool {
		return allowed[sym]
	})
}

// Result holds the outcome of a traversal:
//   - Order: states in visit sequence.
//   - Depth: distance (in transitions) from the start.
//   - Parent: predecessor in the BFS tree.
//   - Via: symbol of the tree transition entering each non-start state.
type Result struct {
	Order  []automaton.State
	Depth  map[automaton.State]int
	Parent map[automaton.State]automaton.State
	Via    map[automaton.State]automaton.Symbol
}

// Reached reports whether s was visited.
func (r *Result) Reached(s automaton.State) bool {
	_, ok := r.Depth[s]

	return ok
}

// PathTo reconstructs the state path from the start to dest together with
// the symbols labelling it (len(symbols) == len(states)-1).
func (r *Result) PathTo(dest automaton.State) ([]automaton.State, []automaton.Symbol, error) {
	if !r.Reached(dest) {
		return nil, nil, fmt.Errorf("traverse: no path to %d", dest)
	}
	states := []automaton.State{}
	var syms []automaton.Symbol
	for cur := dest; ; {
		states = append(states, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		syms = append(syms, r.Via[cur])
		cur = prev
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	for i, j := 0, len(syms)-1; i < j; i, j = i+1, j-1 {
		syms[i], syms[j] = syms[j], syms[i]
	}

	return states, syms, nil
}
