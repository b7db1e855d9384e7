package traverse

import (
	"fmt"

	"github.com/katalvlaran/desdiag/automaton"
)

type queueItem struct {
	id    automaton.State
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	a       *automaton.Automaton
	opts    Options
	queue   []queueItem
	visited map[automaton.State]bool
	res     *Result
}

// BFS runs breadth-first search on a starting from start.
// Successors are explored in ascending symbol order, so Order is
// deterministic for a given automaton.
// Returns ErrNilAutomaton or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any OnVisit error.
func BFS(a *automaton.Automaton, start automaton.State, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !a.HasState(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := a.Len()
	w := &walker{
		a:       a,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[automaton.State]bool, n),
		res: &Result{
			Order:  make([]automaton.State, 0, n),
			Depth:  make(map[automaton.State]int, n),
			Parent: make(map[automaton.State]automaton.State, n),
			Via:    make(map[automaton.State]automaton.Symbol, n),
		},
	}
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start})

	return w.res, w.loop()
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %d: %w", item.id, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, sym := range w.a.Symbols(item.id) {
			next, err := w.a.Navigate(item.id, sym)
			if err != nil {
				return err
			}
			if w.visited[next] || !w.opts.FilterSymbol(item.id, sym, next) {
				continue
			}
			w.visited[next] = true
			w.res.Depth[next] = nextDepth
			w.res.Parent[next] = item.id
			w.res.Via[next] = sym
			w.queue = append(w.queue, queueItem{id: next, depth: nextDepth})
		}
	}

	return nil
}

// Reachable returns the set of states reachable from `from`, itself included.
// An unknown start yields an empty set.
func Reachable(a *automaton.Automaton, from automaton.State) map[automaton.State]bool {
	res, err := BFS(a, from)
	if err != nil {
		return map[automaton.State]bool{}
	}
	out := make(map[automaton.State]bool, len(res.Order))
	for _, s := range res.Order {
		out[s] = true
	}

	return out
}

// Unreachable lists the states of a that cannot be reached from its root,
// in ascending order.
func Unreachable(a *automaton.Automaton) []automaton.State {
	seen := Reachable(a, a.Root())
	var out []automaton.State
	for _, s := range a.States() {
		if !seen[s] {
			out = append(out, s)
		}
	}

	return out
}
