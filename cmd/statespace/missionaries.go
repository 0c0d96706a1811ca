package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/internal/render"
	mc "github.com/katalvlaran/statespace/missionaries"
)

var (
	mcPopulation int
	mcStrategy   string
)

var missionariesCmd = &cobra.Command{
	Use:     "missionaries",
	Aliases: []string{"mc"},
	Short:   "Solve the missionaries and cannibals river crossing",
	Long: `Move every missionary and cannibal from the west bank to the east bank in a
two-seat boat without cannibals ever outnumbering missionaries on a bank.

Examples:
  statespace missionaries
  statespace missionaries --population 2 --strategy astar`,
	Args: cobra.NoArgs,
	RunE: runMissionaries,
}

func init() {
	rootCmd.AddCommand(missionariesCmd)

	missionariesCmd.Flags().IntVar(&mcPopulation, "population", mc.DefaultPopulation, "Missionaries (and cannibals) on the west bank")
	missionariesCmd.Flags().StringVar(&mcStrategy, "strategy", "bfs", "Search strategy: dfs, bfs, astar (or frontier kind: stack, queue, priority)")
}

func runMissionaries(cmd *cobra.Command, args []string) error {
	section := map[string]any{}
	if cmd.Flags().Changed("population") {
		section["population"] = mcPopulation
	}
	if cmd.Flags().Changed("strategy") {
		section["strategy"] = mcStrategy
	}
	overrides := map[string]any{}
	if len(section) > 0 {
		overrides["missionaries"] = section
	}

	e, err := setup(cmd, overrides)
	if err != nil {
		return err
	}
	p, err := mc.New(e.cfg.Missionaries.Population)
	if err != nil {
		return err
	}

	name, res, err := solve[mc.State](e.cfg.Missionaries.Strategy, p, e.options()...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	if res.Found() {
		if err := mc.Narrate(out, res.Path()); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, render.Note(summary(name, res), e.profile))

	return e.flush(out)
}
