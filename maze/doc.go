// Package maze models a rectangular grid maze as a core.Problem over
// Location states.
//
// A Maze is built either randomly with New (each cell is blocked with
// probability equal to the sparseness) or from text with Parse. It is
// immutable once built, so any number of searches may run over the same
// Maze concurrently.
//
// Moves are orthogonal and tried in a fixed order: right, down, left, up.
// Blocked cells and cells outside the grid are never produced as
// successors. Heuristic is the Manhattan distance to the goal, which is
// admissible and consistent for unit-cost orthogonal moves.
//
// Text form uses one rune per cell:
//
//	' '  empty
//	'X'  blocked
//	'S'  start
//	'G'  goal
//	'*'  path (Render output only; Parse reads it as empty)
package maze
