package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/builder"
	"github.com/katalvlaran/desdiag/generator"
	"github.com/katalvlaran/desdiag/store"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		minStates, maxStates int
		extraNormal, multi   bool
		seed                 int64
		order                string
		diagnosable          bool
		maxAttempts          int
		outDir, name         string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a random fault-injected automaton and store it",
		Long: `Build a random automaton with injected faults and store it under the
automata directory.

With --diagnosable the automaton is rebuilt until the diagnosability check
accepts it, up to --max-attempts builds.

Examples:
  desdiag build --min 11 --max 30
  desdiag build --multi-faulty --extra-normal --seed 42
  desdiag build --diagnosable --max-attempts 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc := a.cfg.Builder
			flags := cmd.Flags()
			if flags.Changed("min") {
				bc.MinStates = minStates
			}
			if flags.Changed("max") {
				bc.MaxStates = maxStates
			}
			if flags.Changed("extra-normal") {
				bc.ExtraNormal = extraNormal
			}
			if flags.Changed("multi-faulty") {
				bc.MultiFaulty = multi
			}
			if flags.Changed("fault-order") {
				bc.FaultOrder = order
			}
			if flags.Changed("seed") {
				bc.Seed = &seed
			}
			if !flags.Changed("max-attempts") {
				maxAttempts = a.cfg.Generator.MaxAttempts
			}
			if !flags.Changed("out") {
				outDir = a.cfg.Storage.AutomataDir
			}
			fo, err := automaton.ParseFaultOrder(bc.FaultOrder)
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			if bc.Seed != nil {
				rng = rand.New(rand.NewSource(*bc.Seed))
			}

			var (
				atm *automaton.Automaton
				cfg *automaton.Config
			)
			if diagnosable {
				res, err := generator.New(bc.MinStates, bc.MaxStates,
					generator.WithExtraNormal(bc.ExtraNormal),
					generator.WithMultiFaulty(bc.MultiFaulty),
					generator.WithMaxAttempts(maxAttempts),
					generator.WithRand(rng),
					generator.WithFaultOrder(fo),
					generator.WithPairing(a.cfg.Pairing()),
					generator.WithLogger(a.log),
					generator.WithMetrics(a.metrics),
				).Generate(cmd.Context())
				if err != nil {
					return err
				}
				atm, cfg = res.Automaton, res.Config
				fmt.Fprintf(cmd.OutOrStdout(), "attempts: %d\n", res.Attempts)
			} else {
				start := time.Now()
				atm, cfg, err = builder.Build(bc.MinStates, bc.MaxStates, bc.ExtraNormal, bc.MultiFaulty,
					builder.WithRand(rng),
					builder.WithFaultOrder(fo),
					builder.WithLogger(a.log))
				a.metrics.RecordBuild(bc.MultiFaulty, err, time.Since(start))
				if err != nil {
					return err
				}
			}

			rec := store.NewRecord(atm, cfg)
			path, err := store.SaveFile(outDir, name, rec)
			if err != nil {
				return err
			}
			a.log.Info("automaton stored", slog.String("path", path), slog.String("id", rec.ID.String()))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "saved: %s\n", path)
			fmt.Fprint(out, cfg.Summary())
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&minStates, "min", 0, "minimum number of states (> 10)")
	f.IntVar(&maxStates, "max", 0, "maximum number of states")
	f.BoolVar(&extraNormal, "extra-normal", false, "append a recovery segment")
	f.BoolVar(&multi, "multi-faulty", false, "cross-wire fault segments")
	f.Int64Var(&seed, "seed", 0, "random seed")
	f.StringVar(&order, "fault-order", "", "fault symbol ordering: reversed or natural")
	f.BoolVar(&diagnosable, "diagnosable", false, "rebuild until the automaton is diagnosable")
	f.IntVar(&maxAttempts, "max-attempts", 0, "build budget for --diagnosable")
	f.StringVar(&outDir, "out", "", "output directory (default: storage.automata_dir)")
	f.StringVar(&name, "name", "", "file name (default: derived from the config)")

	return cmd
}
