package automaton_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/desdiag/automaton"
)

// ExampleAutomaton_Navigate shows the deterministic transition function and
// the sentinel returned for an undefined pair.
func ExampleAutomaton_Navigate() {
	a := automaton.New(0)
	a.AddState(1)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(0, 'a', 0) // ignored: 'a' already used at 0

	next, _ := a.Navigate(0, 'a')
	fmt.Println(next)

	_, err := a.Navigate(1, 'a')
	fmt.Println(errors.Is(err, automaton.ErrSymbolNotFound))
	// Output:
	// 1
	// true
}
