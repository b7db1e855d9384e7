// Command desdiag builds random fault-injected automata, checks their
// diagnosability and samples labelled running logs from them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "desdiag:", err)
		os.Exit(1)
	}
}
