package core

import "errors"

// UnitCost is the cost of a single transition. Every supported domain moves
// between neighbouring states at the same price.
const UnitCost = 1.0

// ErrNilNode is returned when a nil *Node is passed where a terminal node is required.
var ErrNilNode = errors.New("core: node is nil")

// Problem is the capability set a domain exposes to the search engine.
//
// Initial returns the state the search starts from.
// IsGoal reports whether s satisfies the goal condition.
// Successors lists the states reachable from s in one transition; the order
// of the returned slice fixes the order in which the engine enqueues them.
// Heuristic estimates the remaining cost from s to a goal. It must never be
// negative; A* is only optimal when it is admissible and consistent.
type Problem[S comparable] interface {
	Initial() S
	IsGoal(s S) bool
	Successors(s S) []S
	Heuristic(s S) float64
}

// Node is a search-tree node: bookkeeping around a state, not part of the domain.
//
// Parent is nil for the root. Cost is the accumulated path cost from the root
// and never decreases along a parent chain; the root's Cost is 0.
type Node[S comparable] struct {
	State     S
	Parent    *Node[S]
	Cost      float64
	Heuristic float64

	depth int // edges to the root, fixed at construction
}

// NewRoot returns the root node for state s: no parent, zero cost, zero heuristic.
func NewRoot[S comparable](s S) *Node[S] {
	return &Node[S]{State: s}
}

// NewChild returns a node for state s reached from parent.
// A nil parent yields a node at depth 0.
func NewChild[S comparable](s S, parent *Node[S], cost, heuristic float64) *Node[S] {
	n := &Node[S]{State: s, Parent: parent, Cost: cost, Heuristic: heuristic}
	if parent != nil {
		n.depth = parent.depth + 1
	}

	return n
}

// Priority is the A* ordering key: Cost + Heuristic.
func (n *Node[S]) Priority() float64 {
	return n.Cost + n.Heuristic
}

// Depth returns the number of edges between n and the root.
// Complexity: O(1); the value is recorded by NewChild.
func (n *Node[S]) Depth() int {
	return n.depth
}
