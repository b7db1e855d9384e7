package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/desdiag/store"
	"github.com/katalvlaran/desdiag/traces"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		minSteps, maxSteps, size int
		seed                     int64
		outDir                   string
	)

	cmd := &cobra.Command{
		Use:   "sample <file>",
		Short: "Sample labelled running logs from a stored automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.loadRecord(args[0])
			if err != nil {
				return err
			}
			sc := a.cfg.Sampler
			flags := cmd.Flags()
			if flags.Changed("min-steps") {
				sc.MinSteps = minSteps
			}
			if flags.Changed("max-steps") {
				sc.MaxSteps = maxSteps
			}
			if flags.Changed("size") {
				sc.Size = size
			}
			if !flags.Changed("out") {
				outDir = a.cfg.Storage.LogsDir
			}

			opts := []traces.Option{traces.WithSteps(sc.MinSteps, sc.MaxSteps), traces.WithLogger(a.log)}
			if flags.Changed("seed") {
				opts = append(opts, traces.WithSeed(seed))
			}
			s, err := traces.NewSampler(rec.Automaton, rec.Config, opts...)
			if err != nil {
				return err
			}
			d, err := s.Sample(cmd.Context(), sc.Size)
			if err != nil {
				return err
			}

			path, err := writeDataset(outDir, strings.TrimSuffix(filepath.Base(args[0]), store.Ext), d)
			if err != nil {
				return err
			}
			a.log.Info("running logs written", slog.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), d.Header())
			fmt.Fprintf(cmd.OutOrStdout(), "saved: %s\n", path)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&minSteps, "min-steps", 0, "minimum walk length")
	f.IntVar(&maxSteps, "max-steps", 0, "maximum walk length")
	f.IntVar(&size, "size", 0, "number of logs")
	f.Int64Var(&seed, "seed", 0, "random seed")
	f.StringVar(&outDir, "out", "", "output directory (default: storage.logs_dir)")

	return cmd
}

// writeDataset writes d to dir/<base>_running-logs.txt.
func writeDataset(dir, base string, d *traces.Dataset) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, base+"_running-logs.txt")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return "", err
	}

	return path, f.Close()
}
