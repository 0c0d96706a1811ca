package maze_test

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/astar"
	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/search"
)

type strategy struct {
	name string
	run  func(m *maze.Maze) (*search.Result[maze.Location], error)
}

var strategies = []strategy{
	{"dfs", func(m *maze.Maze) (*search.Result[maze.Location], error) { return dfs.Search[maze.Location](m) }},
	{"bfs", func(m *maze.Maze) (*search.Result[maze.Location], error) { return bfs.Search[maze.Location](m) }},
	{"astar", func(m *maze.Maze) (*search.Result[maze.Location], error) { return astar.Search[maze.Location](m) }},
}

// assertValidPath checks endpoints, adjacency and passability of path.
func assertValidPath(t *testing.T, m *maze.Maze, path []maze.Location) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, m.Start(), path[0])
	assert.Equal(t, m.Goal(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Contains(t, m.Successors(path[i-1]), path[i], "step %d", i)
	}
}

// shortest enumerates every simple path from start to goal and returns the
// fewest states on any of them, or 0 when none exists.
func shortest(m *maze.Maze) int {
	best := 0
	seen := map[maze.Location]bool{m.Start(): true}
	var walk func(l maze.Location, n int)
	walk = func(l maze.Location, n int) {
		if best != 0 && n >= best {
			return
		}
		if m.IsGoal(l) {
			best = n
			return
		}
		for _, next := range m.Successors(l) {
			if seen[next] {
				continue
			}
			seen[next] = true
			walk(next, n+1)
			seen[next] = false
		}
	}
	walk(m.Start(), 1)

	return best
}

func TestNew_Defaults(t *testing.T) {
	m, err := maze.New(maze.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 10, m.Rows())
	assert.Equal(t, 10, m.Columns())
	assert.Equal(t, maze.Location{Row: 0, Column: 0}, m.Start())
	assert.Equal(t, maze.Location{Row: 9, Column: 9}, m.Goal())

	c, err := m.At(m.Start())
	require.NoError(t, err)
	assert.Equal(t, maze.Start, c)
	c, err = m.At(m.Goal())
	require.NoError(t, err)
	assert.Equal(t, maze.Goal, c)
}

func TestNew_GoalFollowsSize(t *testing.T) {
	m, err := maze.New(maze.WithSize(4, 7), maze.WithSparseness(0))
	require.NoError(t, err)
	assert.Equal(t, maze.Location{Row: 3, Column: 6}, m.Goal())
}

func TestNew_InvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opt  maze.Option
		want error
	}{
		{"zero rows", maze.WithSize(0, 5), maze.ErrEmptyGrid},
		{"negative columns", maze.WithSize(5, -1), maze.ErrEmptyGrid},
		{"sparseness above one", maze.WithSparseness(1.5), maze.ErrBadSparseness},
		{"negative sparseness", maze.WithSparseness(-0.1), maze.ErrBadSparseness},
		{"start outside", maze.WithStart(maze.Location{Row: 10, Column: 0}), maze.ErrOutOfBounds},
		{"goal outside", maze.WithGoal(maze.Location{Row: 0, Column: -1}), maze.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.opt)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_SeedIsReproducible(t *testing.T) {
	a, err := maze.New(maze.WithSeed(42), maze.WithSparseness(0.4))
	require.NoError(t, err)
	b, err := maze.New(maze.WithRand(rand.New(rand.NewSource(42))), maze.WithSparseness(0.4))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestNew_SparsenessExtremes(t *testing.T) {
	m, err := maze.New(maze.WithSparseness(0), maze.WithSeed(3))
	require.NoError(t, err)
	assert.NotContains(t, m.String(), "X")

	m, err = maze.New(maze.WithSparseness(1), maze.WithSeed(3))
	require.NoError(t, err)
	// everything but the endpoints is blocked
	assert.Equal(t, 98, strings.Count(m.String(), "X"))
	assert.Empty(t, m.Successors(m.Start()))
}

func TestNew_EndpointOverwritesBlocked(t *testing.T) {
	m, err := maze.New(maze.WithSparseness(1), maze.WithSize(3, 3),
		maze.WithStart(maze.Location{Row: 1, Column: 1}), maze.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, "XXX\nXSX\nXXG", m.String())
}

func TestParse(t *testing.T) {
	m, err := maze.Parse("S X\n * \nX G\n")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Columns())
	assert.Equal(t, maze.Location{Row: 2, Column: 2}, m.Goal())
	// path runes are read back as empty cells
	assert.Equal(t, "S X\n   \nX G", m.String())

	crlf, err := maze.Parse("SG\r\n  \r\n")
	require.NoError(t, err)
	assert.Equal(t, "SG\n  ", crlf.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name, text string
		want       error
	}{
		{"empty", "", maze.ErrEmptyGrid},
		{"only newline", "\n", maze.ErrEmptyGrid},
		{"ragged", "S  \n G", maze.ErrNonRectangular},
		{"unknown rune", "S.G", maze.ErrUnknownCell},
		{"no start", "  G", maze.ErrMissingEndpoint},
		{"no goal", "S  ", maze.ErrMissingEndpoint},
		{"two starts", "SSG", maze.ErrMissingEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.text)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSuccessors_OrderAndFiltering(t *testing.T) {
	m, err := maze.Parse("S  \n   \n  G")
	require.NoError(t, err)
	centre := maze.Location{Row: 1, Column: 1}
	assert.Equal(t, []maze.Location{
		{Row: 1, Column: 2}, // right
		{Row: 2, Column: 1}, // down
		{Row: 1, Column: 0}, // left
		{Row: 0, Column: 1}, // up
	}, m.Successors(centre))

	blocked, err := maze.Parse("S X\n  X\n  G")
	require.NoError(t, err)
	assert.Equal(t, []maze.Location{{Row: 2, Column: 1}, {Row: 1, Column: 0}, {Row: 0, Column: 1}},
		blocked.Successors(maze.Location{Row: 1, Column: 1}))
	// corners only see in-bounds cells
	assert.Equal(t, []maze.Location{{Row: 0, Column: 1}, {Row: 1, Column: 0}},
		blocked.Successors(maze.Location{Row: 0, Column: 0}))
}

func TestHeuristic(t *testing.T) {
	m, err := maze.New(maze.WithSparseness(0), maze.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 18.0, m.Heuristic(m.Start()))
	assert.Equal(t, 0.0, m.Heuristic(m.Goal()))
	assert.Equal(t, 5.0, m.Heuristic(maze.Location{Row: 6, Column: 7}))

	a, b := maze.Location{Row: 0, Column: 0}, maze.Location{Row: 3, Column: 4}
	assert.Equal(t, 7.0, maze.Manhattan(a, b))
	assert.Equal(t, 5.0, maze.Euclidean(a, b))
}

func TestAt_OutOfBounds(t *testing.T) {
	m, err := maze.Parse("SG")
	require.NoError(t, err)
	_, err = m.At(maze.Location{Row: 1, Column: 0})
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
}

func TestSearch_EmptyGrid(t *testing.T) {
	m, err := maze.New(maze.WithSparseness(0), maze.WithSeed(1))
	require.NoError(t, err)
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			res, err := s.run(m)
			require.NoError(t, err)
			require.True(t, res.Found())
			assertValidPath(t, m, res.Path())
			if s.name == "dfs" {
				assert.GreaterOrEqual(t, len(res.Path()), 19)
			} else {
				assert.Len(t, res.Path(), 19)
			}
		})
	}
	res, err := astar.Search[maze.Location](m)
	require.NoError(t, err)
	assert.Equal(t, 18.0, res.Goal.Cost)
}

func TestSearch_SingleCell(t *testing.T) {
	m, err := maze.New(maze.WithSize(1, 1), maze.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, "G", m.String())
	for _, s := range strategies {
		res, err := s.run(m)
		require.NoError(t, err)
		assert.Equal(t, []maze.Location{{}}, res.Path(), s.name)
	}
}

func TestSearch_WalledOff(t *testing.T) {
	m, err := maze.Parse("S X\nXX \n  G")
	require.NoError(t, err)
	for _, s := range strategies {
		res, err := s.run(m)
		require.NoError(t, err)
		assert.False(t, res.Found(), s.name)
		assert.ElementsMatch(t, []maze.Location{{Row: 0, Column: 0}, {Row: 0, Column: 1}}, res.Discovered, s.name)
	}
}

func TestSearch_AgreesWithEnumeration(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		m, err := maze.New(maze.WithSize(4, 4), maze.WithSparseness(0.3), maze.WithSeed(seed))
		require.NoError(t, err)
		want := shortest(m)

		for _, s := range strategies {
			res, err := s.run(m)
			require.NoError(t, err)
			if want == 0 {
				assert.False(t, res.Found(), "seed %d %s\n%s", seed, s.name, m)
				continue
			}
			require.True(t, res.Found(), "seed %d %s\n%s", seed, s.name, m)
			assertValidPath(t, m, res.Path())
			if s.name == "dfs" {
				assert.GreaterOrEqual(t, len(res.Path()), want)
			} else {
				assert.Len(t, res.Path(), want, "seed %d %s\n%s", seed, s.name, m)
			}
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	m, err := maze.New(maze.WithSeed(2024), maze.WithSize(15, 15))
	require.NoError(t, err)
	for _, s := range strategies {
		first, err := s.run(m)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := s.run(m)
			require.NoError(t, err)
			assert.Equal(t, first.Path(), again.Path(), s.name)
			assert.Equal(t, first.Discovered, again.Discovered, s.name)
		}
	}
}

func TestSearch_ConcurrentRunsShareMaze(t *testing.T) {
	m, err := maze.New(maze.WithSeed(7), maze.WithSize(20, 20), maze.WithSparseness(0.25))
	require.NoError(t, err)
	want, err := bfs.Search[maze.Location](m)
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	results := make([][]maze.Location, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := bfs.Search[maze.Location](m)
			if err == nil {
				results[i] = res.Path()
			}
		}(i)
	}
	wg.Wait()
	for i := range results {
		assert.Equal(t, want.Path(), results[i], "worker %d", i)
	}
}

func TestRender(t *testing.T) {
	m, err := maze.Parse("S  \nXX \nG  ")
	require.NoError(t, err)
	res, err := bfs.Search[maze.Location](m)
	require.NoError(t, err)

	assert.Equal(t, "S**\nXX*\nG**", m.Render(res.Path()))
	// rendering never marks the maze itself
	assert.Equal(t, "S  \nXX \nG  ", m.String())
	// out-of-range locations are ignored
	assert.Equal(t, "S  \nXX \nG  ", m.Render([]maze.Location{{Row: 5, Column: 5}}))
}

func TestCells_StopsEarly(t *testing.T) {
	m, err := maze.Parse("S  \nXX \nG  ")
	require.NoError(t, err)
	var seen []maze.Cell
	m.Cells(nil, func(_ maze.Location, c maze.Cell) bool {
		seen = append(seen, c)
		return len(seen) < 4
	})
	assert.Equal(t, []maze.Cell{maze.Start, maze.Empty, maze.Empty, maze.Blocked}, seen)
}

func TestCellAndLocationString(t *testing.T) {
	assert.Equal(t, "X", maze.Blocked.String())
	assert.Equal(t, "(2,3)", maze.Location{Row: 2, Column: 3}.String())
	assert.Equal(t, maze.Location{Row: 1, Column: 5}, maze.Location{Row: 2, Column: 3}.Add(-1, 2))
}
