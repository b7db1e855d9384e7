package builder_test

import (
	"fmt"

	"github.com/katalvlaran/desdiag/builder"
	"github.com/katalvlaran/desdiag/traverse"
)

// ExampleBuild builds a seeded single-fault automaton and checks that the
// whole state space hangs off the normal root.
func ExampleBuild() {
	a, cfg, err := builder.Build(11, 20, false, false, builder.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cfg.NumFaults() >= 2, a.Len() == cfg.StateSize)
	fmt.Println(len(traverse.Unreachable(a)))
	// Output:
	// true true
	// 0
}
