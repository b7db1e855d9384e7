package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/desdiag/store"
	"github.com/katalvlaran/desdiag/traverse"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Describe a stored automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.loadRecord(args[0])
			if err != nil {
				return err
			}
			atm := rec.Automaton

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id: %s\n", rec.ID)
			fmt.Fprintf(out, "created: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "root: %d, states: %d, transitions: %d\n", atm.Root(), atm.Len(), atm.NumTransitions())
			fmt.Fprintf(out, "reachable: %d, unreachable: %v\n",
				len(traverse.Reachable(atm, atm.Root())), traverse.Unreachable(atm))
			fmt.Fprint(out, rec.Config.Summary())
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored automata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := store.List(a.cfg.Storage.AutomataDir)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
