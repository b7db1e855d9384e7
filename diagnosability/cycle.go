// Cycle search over the composite product.
//
// OnCycle answers "is there a non-empty path from key back to key?" with an
// explicit-stack depth-first search. Colors (white, gray, black) and the
// frame stack are local to each call.
//
// Complexity: O(V + E) time and O(V) memory per call.

package diagnosability

// Node colors for the explicit-stack cycle search.
const (
	white = iota // not reached yet
	gray         // on the current DFS stack
	black        // fully explored
)

// frame is one entry of the explicit DFS stack: a node and the index of the
// next outgoing edge to examine.
type frame struct {
	key  CompositeKey
	next int
}

// OnCycle reports whether key lies on a cycle of the product. A self-loop
// on key counts. Unknown keys yield false.
func (p *Product) OnCycle(key CompositeKey) bool {
	if !p.Has(key) {
		return false
	}

	color := map[CompositeKey]int{key: gray}
	stack := []frame{{key: key}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		edges := p.edges[top.key]
		if top.next >= len(edges) {
			color[top.key] = black
			stack = stack[:len(stack)-1]
			continue
		}
		to := edges[top.next].To
		top.next++

		if to == key {
			return true
		}
		if color[to] == white {
			color[to] = gray
			stack = append(stack, frame{key: to})
		}
	}

	return false
}

// CyclicMismatched returns the label-mismatched nodes that lie on a cycle,
// sorted by key.
func (p *Product) CyclicMismatched() []CompositeKey {
	var out []CompositeKey
	for _, k := range p.Mismatched() {
		if p.OnCycle(k) {
			out = append(out, k)
		}
	}

	return out
}
