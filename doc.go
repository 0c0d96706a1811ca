// Package statespace is a small toolkit for solving puzzles by searching
// their state space.
//
// What is in the box?
//
//	A generic search engine plus two worked problems:
//		• Frontiers: stack (LIFO), queue (FIFO), priority queue (min-heap, FIFO on ties)
//		• Engine: one loop for every strategy, with explored-state deduplication
//		• Strategies: depth-first, breadth-first, A*
//		• Paths: parent-chain reconstruction from the goal back to the start
//		• Problems: grid mazes, missionaries and cannibals
//
// Why?
//
//   - Any type with Initial, IsGoal, Successors and Heuristic is a problem.
//   - Strategies differ only in frontier order and explored bookkeeping.
//   - Runs are deterministic: same problem, same path, same discovery order.
//
// Packages:
//
//	core/            Problem, Node, Path and small search helpers
//	frontier/        Stack, Queue, PriorityQueue behind one Frontier interface
//	search/          Run: the engine loop, options, hooks, Result
//	dfs/ bfs/ astar/ strategy entry points over search.Run
//	maze/            random or parsed grid mazes
//	missionaries/    the river-crossing puzzle and its narration
//	cmd/statespace   command-line front end
//
// Quick example:
//
//	m, _ := maze.New(maze.WithSeed(7))
//	res, _ := astar.Search[maze.Location](m)
//	if res.Found() {
//	    fmt.Println(m.Render(res.Path()))
//	}
package statespace

// Version is the release of this module.
const Version = "0.3.0"
