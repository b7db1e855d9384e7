package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/diagnosability"
	"github.com/katalvlaran/desdiag/reference"
)

func newEGRCmd(a *app) *cobra.Command {
	var (
		root   int
		logs   int
		seed   int64
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "egr",
		Short: "Check the EGR reference system and optionally sample its running logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok, err := reference.Diagnosable(automaton.State(root), diagnosability.WithLogger(a.log))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "root %d diagnosable: %t\n", root, ok)
			if logs <= 0 {
				return nil
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			if !cmd.Flags().Changed("out") {
				outDir = a.cfg.Storage.LogsDir
			}
			d, err := reference.Logs(cmd.Context(), rand.New(rand.NewSource(seed)), logs)
			if err != nil {
				return err
			}
			path, err := writeDataset(outDir, "egr-system", d)
			if err != nil {
				return err
			}
			a.log.Info("EGR running logs written", slog.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), d.Header())
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&root, "root", 2, "root state (1..8)")
	f.IntVar(&logs, "logs", 0, "number of running logs to sample (0: none)")
	f.Int64Var(&seed, "seed", 0, "random seed")
	f.StringVar(&outDir, "out", "", "output directory (default: storage.logs_dir)")

	return cmd
}
