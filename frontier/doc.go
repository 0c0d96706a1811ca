// Package frontier provides the pluggable containers that decide in which
// order a search expands discovered nodes.
//
// What
//
//   - Frontier[T]: Put, Get, IsEmpty, Len.
//   - Stack[T]:         last-in-first-out  → depth-first order.
//   - Queue[T]:         first-in-first-out → breadth-first order.
//   - PriorityQueue[T]: smallest priority first → best-first / A* order.
//
// Tie-breaking
//
//	PriorityQueue stamps every Put with a monotonically increasing sequence
//	number. Among entries with equal priority the one inserted first is
//	returned first (FIFO), so a search over an unmodified problem always
//	expands nodes in the same order.
//
// Errors
//
//   - ErrUnderflow      Get on an empty frontier.
//   - ErrNilPriority    KindPriority requested without a priority function.
//   - ErrUnknownKind    Kind value or name not recognised.
//
// Complexity
//
//   - Stack, Queue:  Put/Get amortised O(1).
//   - PriorityQueue: Put/Get O(log n).
package frontier
