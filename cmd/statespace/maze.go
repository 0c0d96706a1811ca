package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/internal/render"
	"github.com/katalvlaran/statespace/maze"
)

var (
	mazeRows       int
	mazeColumns    int
	mazeSparseness float64
	mazeSeed       int64
	mazeStrategy   string
	mazeFile       string
	mazeAll        bool
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Generate or load a grid maze and find a path through it",
	Long: `Generate a random maze (or read one with --file) and solve it from S to G.

Examples:
  statespace maze
  statespace maze --rows 20 --columns 40 --sparseness 0.3 --seed 7
  statespace maze --file level.txt --strategy bfs
  statespace maze --seed 7 --all`,
	Args: cobra.NoArgs,
	RunE: runMaze,
}

func init() {
	rootCmd.AddCommand(mazeCmd)

	mazeCmd.Flags().IntVar(&mazeRows, "rows", maze.DefaultRows, "Number of rows")
	mazeCmd.Flags().IntVar(&mazeColumns, "columns", maze.DefaultColumns, "Number of columns")
	mazeCmd.Flags().Float64Var(&mazeSparseness, "sparseness", maze.DefaultSparseness, "Probability that a cell is blocked")
	mazeCmd.Flags().Int64Var(&mazeSeed, "seed", 0, "Random seed (0 draws a new maze each run)")
	mazeCmd.Flags().StringVar(&mazeStrategy, "strategy", "astar", "Search strategy: dfs, bfs, astar (or frontier kind: stack, queue, priority)")
	mazeCmd.Flags().StringVar(&mazeFile, "file", "", "Read the maze from a text file instead of generating one")
	mazeCmd.Flags().BoolVar(&mazeAll, "all", false, "Solve with every strategy in turn")
}

func runMaze(cmd *cobra.Command, args []string) error {
	overrides := map[string]any{}
	section := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("rows") {
		section["rows"] = mazeRows
	}
	if flags.Changed("columns") {
		section["columns"] = mazeColumns
	}
	if flags.Changed("sparseness") {
		section["sparseness"] = mazeSparseness
	}
	if flags.Changed("seed") {
		section["seed"] = mazeSeed
	}
	if flags.Changed("strategy") {
		section["strategy"] = mazeStrategy
	}
	if len(section) > 0 {
		overrides["maze"] = section
	}

	e, err := setup(cmd, overrides)
	if err != nil {
		return err
	}
	m, err := loadMaze(e.cfg.Maze)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Maze(m, nil, e.profile))

	strategies := []string{e.cfg.Maze.Strategy}
	if mazeAll {
		strategies = config.Strategies
	}
	for _, requested := range strategies {
		name, res, err := solve[maze.Location](requested, m, e.options()...)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintln(out)
		if res.Found() {
			fmt.Fprintln(out, render.Maze(m, res.Path(), e.profile))
		}
		fmt.Fprintln(out, render.Note(summary(name, res), e.profile))
	}

	return e.flush(out)
}

// loadMaze reads --file when given, otherwise generates from cfg.
func loadMaze(cfg config.MazeConfig) (*maze.Maze, error) {
	if mazeFile != "" {
		data, err := os.ReadFile(mazeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read maze file: %w", err)
		}
		return maze.Parse(string(data))
	}

	opts := []maze.Option{
		maze.WithSize(cfg.Rows, cfg.Columns),
		maze.WithSparseness(cfg.Sparseness),
	}
	if cfg.Seed != 0 {
		opts = append(opts, maze.WithSeed(cfg.Seed))
	}

	return maze.New(opts...)
}
