// Package astar runs A* search over any core.Problem.
//
// A* orders expansion by f(n) = g(n) + h(n), where g is the path cost from the
// initial state (every transition costs core.UnitCost) and h is the problem's
// heuristic estimate of the remaining cost.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - every generated node that improves the best known cost is pushed once.
//   - each heap operation costs O(log N), N ≤ E.
//   - Space: O(V + E)
//   - O(V) for the best-cost map.
//   - O(E) worst-case for heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - A state is re-enqueued whenever a strictly cheaper path to it is found.
//     The older entry stays in the heap and is dropped when popped.
//   - Equal priorities are served in insertion order, so runs are reproducible.
//   - With an admissible and consistent heuristic the first goal popped is on
//     a minimum-cost path. A zero heuristic degrades A* to uniform-cost search.
package astar
