// Package dfs runs depth-first search over any core.Problem.
//
// What:
//
//   - Always expands the most recently discovered state (LIFO frontier).
//   - A state is enqueued at most once, so DFS is complete on finite state
//     spaces even when they contain cycles.
//   - The path returned is the first one found, not necessarily the shortest.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and the visited set
//
// Errors:
//
//   - search.ErrNilProblem      problem is nil
//   - search.ErrOptionViolation invalid option
//   - search.ErrBudgetExceeded  WithMaxExpansions limit reached
//   - hook errors               propagated from OnExpand, wrapped
package dfs
