package diagnosability

import (
	"context"
	"fmt"

	"github.com/katalvlaran/desdiag/automaton"
)

// ObserverEdge is one observable transition of the observer.
type ObserverEdge struct {
	Symbol automaton.Symbol
	To     ObserverKey
}

// Observer is the non-deterministic projection of an automaton onto its
// observable symbols. Nodes pair a source state with a fault label; an
// observer node may have several successors for one symbol.
type Observer struct {
	Root ObserverKey

	edges map[ObserverKey][]ObserverEdge
	order []ObserverKey
}

func newObserver(root ObserverKey) *Observer {
	o := &Observer{Root: root, edges: make(map[ObserverKey][]ObserverEdge)}
	o.ensure(root)

	return o
}

// ensure materializes k and reports whether it was new.
func (o *Observer) ensure(k ObserverKey) bool {
	if _, ok := o.edges[k]; ok {
		return false
	}
	o.edges[k] = nil
	o.order = append(o.order, k)

	return true
}

// addEdge appends from --sym--> to unless it already exists, materializing to.
func (o *Observer) addEdge(from ObserverKey, sym automaton.Symbol, to ObserverKey) {
	e := ObserverEdge{Symbol: sym, To: to}
	for _, x := range o.edges[from] {
		if x == e {
			return
		}
	}
	o.edges[from] = append(o.edges[from], e)
	o.ensure(to)
}

// Has reports whether k is an observer node.
func (o *Observer) Has(k ObserverKey) bool {
	_, ok := o.edges[k]

	return ok
}

// Nodes returns the observer nodes in discovery order.
func (o *Observer) Nodes() []ObserverKey { return append([]ObserverKey(nil), o.order...) }

// Len returns the number of observer nodes.
func (o *Observer) Len() int { return len(o.order) }

// NumEdges returns the number of observer edges.
func (o *Observer) NumEdges() int {
	n := 0
	for _, es := range o.edges {
		n += len(es)
	}

	return n
}

// Edges returns the outgoing edges of k in insertion order.
func (o *Observer) Edges(k ObserverKey) []ObserverEdge {
	return append([]ObserverEdge(nil), o.edges[k]...)
}

// Symbols returns the distinct symbols leaving k, in first-insertion order.
func (o *Observer) Symbols(k ObserverKey) []automaton.Symbol {
	var out []automaton.Symbol
	seen := make(map[automaton.Symbol]bool)
	for _, e := range o.edges[k] {
		if !seen[e.Symbol] {
			seen[e.Symbol] = true
			out = append(out, e.Symbol)
		}
	}

	return out
}

// Successors returns the targets of k on sym, in insertion order.
func (o *Observer) Successors(k ObserverKey, sym automaton.Symbol) []ObserverKey {
	var out []ObserverKey
	for _, e := range o.edges[k] {
		if e.Symbol == sym {
			out = append(out, e.To)
		}
	}

	return out
}

// observerBuilder carries the state of one BuildObserver call.
type observerBuilder struct {
	ctx   context.Context
	a     *automaton.Automaton
	cfg   *automaton.Config
	order automaton.FaultOrder
	mode  Mode
	obs   *Observer
}

// BuildObserver derives the observer of a breadth-first from (root, Normal).
//
// Observable transitions are copied with the current label. An unobservable
// transition is never emitted: it is faded by looking through it.
//
//   - ModeSingle: one step is faded; every observable continuation of the
//     fault successor is emitted from the current node with label {F}.
//   - ModeMulti: chains of unobservable steps are followed, accumulating
//     every tag on the chain; a (state, label) pair is faded once per node.
//
// Nodes are deduplicated by (state, label), so every derived node is
// expanded once.
func BuildObserver(a *automaton.Automaton, cfg *automaton.Config, mode Mode, opts ...Option) (*Observer, error) {
	if a == nil || cfg == nil {
		return nil, ErrNilAutomaton
	}
	o := newOptions(opts...)

	return buildObserver(o, a, cfg, mode)
}

func buildObserver(o options, a *automaton.Automaton, cfg *automaton.Config, mode Mode) (*Observer, error) {
	b := &observerBuilder{
		ctx:   o.ctx,
		a:     a,
		cfg:   cfg,
		order: o.resolveOrder(cfg),
		mode:  mode,
		obs:   newObserver(ObserverKey{State: a.Root(), Label: Normal}),
	}

	queue := []ObserverKey{b.obs.Root}
	expanded := map[ObserverKey]bool{b.obs.Root: true}
	for len(queue) > 0 {
		select {
		case <-b.ctx.Done():
			return nil, b.ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		if err := b.expand(cur); err != nil {
			return nil, err
		}
		for _, e := range b.obs.edges[cur] {
			if !expanded[e.To] {
				expanded[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return b.obs, nil
}

// expand emits every outgoing edge of cur.
func (b *observerBuilder) expand(cur ObserverKey) error {
	for _, sym := range b.a.Symbols(cur.State) {
		next, err := b.a.Navigate(cur.State, sym)
		if err != nil {
			return fmt.Errorf("diagnosability: BuildObserver: %w", err)
		}
		if b.cfg.IsObservable(sym) {
			b.obs.addEdge(cur, sym, ObserverKey{State: next, Label: cur.Label})
			continue
		}
		tag, err := b.tag(sym)
		if err != nil {
			return err
		}
		if b.mode == ModeMulti {
			seen := make(map[ObserverKey]bool)
			if err := b.fadeChain(cur, next, cur.Label.Add(tag), seen); err != nil {
				return err
			}
			continue
		}
		if err := b.fadeOnce(cur, next, NewFaultSet(tag)); err != nil {
			return err
		}
	}

	return nil
}

// fadeOnce emits the observable continuations of state from cur with label.
func (b *observerBuilder) fadeOnce(cur ObserverKey, state automaton.State, label FaultSet) error {
	for _, sym := range b.a.Symbols(state) {
		if !b.cfg.IsObservable(sym) {
			continue
		}
		next, err := b.a.Navigate(state, sym)
		if err != nil {
			return fmt.Errorf("diagnosability: BuildObserver: %w", err)
		}
		b.obs.addEdge(cur, sym, ObserverKey{State: next, Label: label})
	}

	return nil
}

// fadeChain follows unobservable transitions from state, accumulating tags.
// label is passed by value, so each sibling branch starts from the label
// its parent had. seen holds the (state, label) pairs already faded for cur;
// a state reached again with a larger label is faded again, and labels only
// grow, so the recursion is bounded by 2^k labels per state.
func (b *observerBuilder) fadeChain(cur ObserverKey, state automaton.State, label FaultSet, seen map[ObserverKey]bool) error {
	seen[ObserverKey{State: state, Label: label}] = true

	for _, sym := range b.a.Symbols(state) {
		next, err := b.a.Navigate(state, sym)
		if err != nil {
			return fmt.Errorf("diagnosability: BuildObserver: %w", err)
		}
		if b.cfg.IsObservable(sym) {
			b.obs.addEdge(cur, sym, ObserverKey{State: next, Label: label})
			continue
		}
		tag, err := b.tag(sym)
		if err != nil {
			return err
		}
		nextLabel := label.Add(tag)
		if seen[ObserverKey{State: next, Label: nextLabel}] {
			continue
		}
		if err := b.fadeChain(cur, next, nextLabel, seen); err != nil {
			return err
		}
	}

	return nil
}

func (b *observerBuilder) tag(sym automaton.Symbol) (int, error) {
	tag, ok := b.order.Tag(b.cfg, sym)
	if !ok {
		return 0, fmt.Errorf("diagnosability: symbol %s: %w", sym, ErrUnknownSymbol)
	}

	return tag, nil
}
