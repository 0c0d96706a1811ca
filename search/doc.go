// Package search implements the generic state-space search engine that the
// dfs, bfs and astar packages are built on.
//
// What
//
//   - Run(p, f, opts...) drives a frontier.Frontier of *core.Node against a
//     core.Problem until a goal node is popped or the frontier is exhausted.
//   - The traversal order is entirely decided by the frontier variant:
//     Stack → depth-first, Queue → breadth-first, PriorityQueue → A*.
//   - Explored-state tracking is chosen with WithTracking:
//   - TrackVisited: a set of states already discovered (DFS, BFS).
//   - TrackCost:    best known path cost per state (A*). A child is only
//     enqueued when it improves on the recorded cost; popped entries whose
//     cost is worse than the recorded one are stale and dropped.
//   - The goal test runs when a node is popped, never when it is generated.
//     The first goal popped is returned and the rest of the frontier is
//     discarded.
//
// Outcomes
//
//	A successful run returns a Result whose Goal is the terminal node.
//	An exhausted frontier returns a Result with Goal == nil and a nil error:
//	"no solution" is a valid answer, not a failure.
//
// Guarantees
//
//   - BFS returns a path with the fewest edges.
//   - A* returns a minimum-cost path when the heuristic is admissible and
//     consistent (Manhattan distance on a 4-connected unit-cost grid is both).
//   - DFS only guarantees that a path is found when one exists.
//   - The explored structure guarantees termination on any finite state
//     space, cycles included.
//
// Options
//
//   - WithTracking(t)          TrackVisited (default) or TrackCost.
//   - WithStrategy(name)       label used in logs and Recorder reports.
//   - WithLogger(l)            *slog.Logger; runs are logged at Debug.
//   - WithMaxExpansions(n)     step budget; n == 0 means unlimited.
//   - WithOnEnqueue(fn)        hook called for every node put on the frontier.
//   - WithOnExpand(fn)         hook called before a node's successors are
//     generated; a returned error aborts the run.
//   - WithRecorder(r)          receives a Report when the run ends.
//
// Errors
//
//   - ErrNilProblem, ErrNilFrontier   invalid input.
//   - ErrOptionViolation              invalid option (e.g. negative budget).
//   - ErrBudgetExceeded               MaxExpansions reached before a goal.
//   - wrapped hook errors             from OnExpand.
//
// Concurrency
//
//	A run owns its frontier and explored structure; nothing is shared
//	between calls. Problems are only read, so independent runs over the same
//	problem value may execute on different goroutines.
package search
