package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/astar"
	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/internal/logging"
	"github.com/katalvlaran/statespace/internal/metrics"
	"github.com/katalvlaran/statespace/internal/render"
	"github.com/katalvlaran/statespace/search"
)

var (
	configPath  string
	logLevel    string
	noColor     bool
	showMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "statespace",
	Short: "Solve puzzles by searching their state space",
	Long: `statespace runs depth-first, breadth-first or A* search over grid mazes
and the missionaries-and-cannibals river crossing, and prints the solution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Print Prometheus metrics after the run")
}

// env is the resolved configuration shared by the solving commands.
type env struct {
	cfg      config.Config
	logger   *slog.Logger
	recorder *metrics.Recorder
	profile  termenv.Profile
}

// setup loads the config file, layers overrides from explicitly set flags on
// top and validates the result.
func setup(cmd *cobra.Command, overrides map[string]any) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = map[string]any{}
	}
	if cmd.Flags().Changed("log-level") {
		overrides["log_level"] = logLevel
	}
	if noColor {
		overrides["color"] = false
	}
	if err := cfg.Apply(overrides); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	e := &env{
		cfg:      cfg,
		logger:   logging.New(level),
		recorder: metrics.NewRecorder(),
		profile:  render.Profile(cfg.Color),
	}
	e.logger.Debug("configuration resolved", "config", configPath, "color", cfg.Color)

	return e, nil
}

// options are the search options every run shares.
func (e *env) options() []search.Option {
	return []search.Option{
		search.WithLogger(e.logger),
		search.WithRecorder(e.recorder),
		search.WithMaxExpansions(e.cfg.Search.MaxExpansions),
	}
}

// flush writes the collected metrics when --metrics is set.
func (e *env) flush(w io.Writer) error {
	if !showMetrics {
		return nil
	}
	fmt.Fprintln(w)

	return e.recorder.WriteText(w)
}

// solve resolves name, a strategy or a frontier kind, and runs that strategy.
// It returns the resolved strategy name for reporting.
func solve[S comparable](name string, p core.Problem[S], opts ...search.Option) (string, *search.Result[S], error) {
	strategy, err := config.ResolveStrategy(name)
	if err != nil {
		return name, nil, err
	}

	var res *search.Result[S]
	switch strategy {
	case dfs.Name:
		res, err = dfs.Search(p, opts...)
	case bfs.Name:
		res, err = bfs.Search(p, opts...)
	case astar.Name:
		res, err = astar.Search(p, opts...)
	}

	return strategy, res, err
}

// summary is the one-line outcome of a run.
func summary[S comparable](name string, res *search.Result[S]) string {
	if !res.Found() {
		return fmt.Sprintf("%s: no solution found (%d states explored, %d expanded)",
			name, len(res.Discovered), res.Stats.Expanded)
	}

	return fmt.Sprintf("%s: path of %d states, %d moves (%d states explored, %d expanded)",
		name, len(res.Path()), res.Goal.Depth(), len(res.Discovered), res.Stats.Expanded)
}
