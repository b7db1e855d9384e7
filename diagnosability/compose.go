package diagnosability

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/desdiag/automaton"
)

// ProductEdge is one transition of the composite product.
type ProductEdge struct {
	Symbol automaton.Symbol
	To     CompositeKey
}

// Product is the self-composition of an observer: pairs of observer nodes
// reachable by the same observable word from (root, root).
type Product struct {
	Root CompositeKey

	edges map[CompositeKey][]ProductEdge
	order []CompositeKey
}

// NewProduct returns a product holding only root. Compose uses it; tests and
// tools may assemble products by hand with AddEdge.
func NewProduct(root CompositeKey) *Product {
	p := &Product{Root: root, edges: make(map[CompositeKey][]ProductEdge)}
	p.ensure(root)

	return p
}

func (p *Product) ensure(k CompositeKey) {
	if _, ok := p.edges[k]; ok {
		return
	}
	p.edges[k] = nil
	p.order = append(p.order, k)
}

// AddEdge appends from --sym--> to unless it already exists, materializing
// both endpoints.
func (p *Product) AddEdge(from CompositeKey, sym automaton.Symbol, to CompositeKey) {
	p.ensure(from)
	e := ProductEdge{Symbol: sym, To: to}
	for _, x := range p.edges[from] {
		if x == e {
			return
		}
	}
	p.edges[from] = append(p.edges[from], e)
	p.ensure(to)
}

// Has reports whether k is a product node.
func (p *Product) Has(k CompositeKey) bool {
	_, ok := p.edges[k]

	return ok
}

// Nodes returns the product nodes in discovery order.
func (p *Product) Nodes() []CompositeKey { return append([]CompositeKey(nil), p.order...) }

// Len returns the number of product nodes.
func (p *Product) Len() int { return len(p.order) }

// NumEdges returns the number of product edges.
func (p *Product) NumEdges() int {
	n := 0
	for _, es := range p.edges {
		n += len(es)
	}

	return n
}

// Edges returns the outgoing edges of k in insertion order.
func (p *Product) Edges(k CompositeKey) []ProductEdge {
	return append([]ProductEdge(nil), p.edges[k]...)
}

// Mismatched returns the nodes whose two labels differ, sorted by key.
func (p *Product) Mismatched() []CompositeKey {
	var out []CompositeKey
	for _, k := range p.order {
		if k.Mismatched() {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// Compose builds the self-composition of obs breadth-first from
// (root, root).
//
// For a node whose two components are identical, every pair of successors
// by the same symbol is emitted (T×T), capturing the divergence point. For
// distinct components only common symbols are followed; with PairFirst one
// edge joins the first successor of each side, with PairAll every pair is
// emitted.
//
// Returns ErrTransitionNotFound when an observer edge leads to a node the
// observer does not hold.
func Compose(obs *Observer, opts ...Option) (*Product, error) {
	if obs == nil {
		return nil, ErrNilAutomaton
	}

	return compose(newOptions(opts...), obs)
}

func compose(o options, obs *Observer) (*Product, error) {
	p := NewProduct(CompositeKey{First: obs.Root, Second: obs.Root})
	queue := []CompositeKey{p.Root}
	expanded := map[CompositeKey]bool{p.Root: true}

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		if err := expandComposite(o, obs, p, cur); err != nil {
			return nil, err
		}
		for _, e := range p.edges[cur] {
			if !expanded[e.To] {
				expanded[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return p, nil
}

func expandComposite(o options, obs *Observer, p *Product, cur CompositeKey) error {
	if !obs.Has(cur.First) || !obs.Has(cur.Second) {
		return fmt.Errorf("diagnosability: Compose: node %s: %w", cur, ErrTransitionNotFound)
	}

	if cur.First == cur.Second {
		for _, sym := range obs.Symbols(cur.First) {
			next := obs.Successors(cur.First, sym)
			for _, a := range next {
				for _, b := range next {
					p.AddEdge(cur, sym, CompositeKey{First: a, Second: b})
				}
			}
		}
		return nil
	}

	second := make(map[automaton.Symbol]bool)
	for _, sym := range obs.Symbols(cur.Second) {
		second[sym] = true
	}
	for _, sym := range obs.Symbols(cur.First) {
		if !second[sym] {
			continue
		}
		fs := obs.Successors(cur.First, sym)
		ss := obs.Successors(cur.Second, sym)
		if len(fs) == 0 || len(ss) == 0 {
			return fmt.Errorf("diagnosability: Compose: %s on %s: %w", cur, sym, ErrTransitionNotFound)
		}
		if o.pairing == PairAll {
			for _, a := range fs {
				for _, b := range ss {
					p.AddEdge(cur, sym, CompositeKey{First: a, Second: b})
				}
			}
			continue
		}
		p.AddEdge(cur, sym, CompositeKey{First: fs[0], Second: ss[0]})
	}

	return nil
}
