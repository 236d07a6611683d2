package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/nntour/internal/config"
	"github.com/katalvlaran/nntour/internal/logging"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"cities":    "cities",
	"seed":      "seed",
	"start":     "start",
	"format":    "format",
	"places":    "places",
	"listen":    "listen",
	"log-level": "log_level",
}

// app carries state resolved once in PersistentPreRunE.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "nntour",
		Short: "nntour builds nearest-neighbour TSP tours over random cities",
		Long: `nntour scatters cities in the unit square, computes their pairwise
distance matrix and walks them with the greedy nearest-neighbour heuristic.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	def := config.Default()
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.Int("cities", def.Cities, "number of cities (2-200)")
	pf.Int64("seed", def.Seed, "random seed (0 picks a fresh one)")
	pf.Int("start", def.Start, "index of the starting city")
	pf.String("log-level", def.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(a), newServeCmd(a), newVersionCmd())

	return root
}

// resolve layers config file, then explicitly set flags, then validates.
func (a *app) resolve(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	values := make(map[string]any)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			values[key] = f.Value.String()
		}
	})
	if cfg, err = cfg.Apply(values); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logging.NewWithWriter(cmd.ErrOrStderr(), level)

	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}
