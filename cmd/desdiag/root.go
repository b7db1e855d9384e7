package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/desdiag/appconfig"
	"github.com/katalvlaran/desdiag/metrics"
	"github.com/katalvlaran/desdiag/store"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath  string
	logLevel    string
	logFormat   string
	dumpMetrics bool

	cfg     *appconfig.Config
	log     *slog.Logger
	metrics *metrics.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "desdiag",
		Short:         "Random fault-injected automata and diagnosability testing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.dumpMetrics || a.metrics == nil {
				return nil
			}
			return a.metrics.WriteText(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "desdiag.yaml", "path of the YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&a.dumpMetrics, "metrics", false, "print collected metrics to stderr on exit")

	root.AddCommand(
		newBuildCmd(a),
		newCheckCmd(a),
		newSampleCmd(a),
		newInfoCmd(a),
		newListCmd(a),
		newEGRCmd(a),
	)

	return root
}

// setup loads the config, applies the logging flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := appconfig.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(a.logLevel)
	}
	if a.logFormat != "" {
		cfg.Logging.Format = strings.ToLower(a.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg)
	a.metrics = metrics.NewRegistry()

	return nil
}

func newLogger(w io.Writer, cfg *appconfig.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// loadRecord reads a stored automaton. A bare file name is looked up in
// the configured automata directory.
func (a *app) loadRecord(arg string) (*store.Record, error) {
	dir, name := filepath.Split(arg)
	if dir == "" {
		dir = a.cfg.Storage.AutomataDir
	}
	rec, err := store.LoadFile(dir, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", arg, err)
	}
	a.log.Debug("automaton loaded",
		slog.String("id", rec.ID.String()),
		slog.Int("states", rec.Automaton.Len()))

	return rec, nil
}
