// Package core defines the vocabulary shared by every search strategy in
// statespace: the Problem capability set a domain implements, the search-tree
// Node that records how a state was reached, and Path reconstruction from a
// terminal Node back to the initial state.
//
// What
//
//   - Problem[S]: initial state, goal test, successor generation and a
//     heuristic estimate. The engine is generic over this interface and never
//     over a concrete domain type.
//   - Node[S]: a state plus its parent, accumulated path cost and heuristic.
//     Nodes only point at their parent, so a run produces a forest of
//     independent, acyclic chains that is discarded when the run ends.
//   - Path(n): walks n's parent chain and returns the states from the initial
//     state to n.State.
//   - LinearContains / BinaryContains: membership tests over plain slices and
//     sorted slices.
//
// States
//
//	A state is any comparable Go value. It is used as a map key by the
//	explored-state structures, so it must be immutable once produced by
//	Problem.Initial or Problem.Successors.
//
// Complexity
//
//   - Path:           O(L) time and memory, L = path length.
//   - LinearContains: O(n).
//   - BinaryContains: O(log n), input must be sorted ascending.
package core
