package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/desdiag/diagnosability"
)

func newCheckCmd(a *app) *cobra.Command {
	var pairing string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Decide whether the faults of a stored automaton are diagnosable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.loadRecord(args[0])
			if err != nil {
				return err
			}
			p := a.cfg.Pairing()
			switch pairing {
			case "":
			case "first":
				p = diagnosability.PairFirst
			case "all":
				p = diagnosability.PairAll
			default:
				return fmt.Errorf("unknown pairing %q", pairing)
			}

			var st diagnosability.Stats
			start := time.Now()
			ok, err := diagnosability.IsDiagnosable(rec.Automaton, rec.Config,
				diagnosability.WithContext(cmd.Context()),
				diagnosability.WithLogger(a.log),
				diagnosability.WithPairing(p),
				diagnosability.WithStats(&st))
			if err != nil {
				return err
			}
			a.metrics.RecordCheck(rec.Config.MultiFaulty, ok, time.Since(start), st)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "diagnosable: %t\n", ok)
			fmt.Fprintf(out, "observer: %d nodes, %d edges\n", st.ObserverNodes, st.ObserverEdges)
			fmt.Fprintf(out, "product: %d nodes, %d edges, %d mismatched\n",
				st.CompositeNodes, st.CompositeEdges, st.Mismatched)
			return nil
		},
	}
	cmd.Flags().StringVar(&pairing, "pairing", "", "composite pairing: first or all (default: generator.pairing)")

	return cmd
}
