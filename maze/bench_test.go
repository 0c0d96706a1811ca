package maze_test

import (
	"testing"

	"github.com/katalvlaran/statespace/astar"
	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/maze"
)

// benchmarkMaze builds a fixed 100×100 maze so every benchmark sees the same grid.
func benchmarkMaze(b *testing.B) *maze.Maze {
	b.Helper()
	m, err := maze.New(maze.WithSize(100, 100), maze.WithSparseness(0.2), maze.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkBFS_100x100(b *testing.B) {
	m := benchmarkMaze(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search[maze.Location](m)
	}
}

func BenchmarkAStar_100x100(b *testing.B) {
	m := benchmarkMaze(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search[maze.Location](m)
	}
}

func BenchmarkNew_100x100(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = maze.New(maze.WithSize(100, 100), maze.WithSeed(int64(i)))
	}
}

// BenchmarkDFS_Open400 runs DFS on an obstacle-free 400×400 grid, where the
// search path snakes through tens of thousands of states.
func BenchmarkDFS_Open400(b *testing.B) {
	m, err := maze.New(maze.WithSize(400, 400), maze.WithSparseness(0), maze.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dfs.Search[maze.Location](m); err != nil {
			b.Fatal(err)
		}
	}
}
