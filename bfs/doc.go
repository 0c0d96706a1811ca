// Package bfs runs breadth-first search over any core.Problem.
//
// What
//
//   - Expands states in non-decreasing depth from the initial state using a
//     FIFO frontier.
//   - Each state is enqueued at most once (visited-set tracking), so the run
//     terminates on any finite state space, cycles included.
//   - Returns a search.Result: the goal node (nil when unreachable), the
//     discovery order and run counters.
//
// Why
//
//   - The first goal popped lies on a path with the fewest transitions.
//   - Useful when every move costs the same and no heuristic is available.
//
// Determinism
//
//	Successors are enqueued in the order the problem yields them, so two runs
//	over the same problem produce the same path and discovery order.
//
// Complexity (V = reachable states, E = generated transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (queue plus visited set)
//
// Usage
//
//	res, err := bfs.Search[maze.Location](m,
//	    search.WithLogger(logger),
//	    search.WithMaxExpansions(10_000),
//	)
//	if err != nil {
//	    // ErrNilProblem, ErrOptionViolation, ErrBudgetExceeded or a hook error
//	}
//	if res.Found() {
//	    fmt.Println(res.Path())
//	}
package bfs
