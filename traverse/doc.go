// Package traverse explores an automaton breadth-first from a start state,
// recording visit order, depth, the BFS tree and the symbol of every tree
// transition.
//
// Typical uses inside desdiag:
//
//   - connectivity: every allocated state must be reachable from the root
//     (Unreachable returns the offenders);
//   - fault reachability: each fault segment root must be reached;
//   - witness paths: PathTo returns both states and the symbol word that
//     leads to a state, which the CLI prints for inspection.
//
// Options follow the functional style: WithContext, WithOnVisit,
// WithMaxDepth, WithFilterSymbol and WithSymbols (e.g. restrict the walk to
// observable symbols).
//
// Complexity: O(V + E log d) time where d is the maximum out-degree
// (symbols are sorted per state), O(V) memory.
package traverse
