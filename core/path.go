package core

import "slices"

// Path reconstructs the sequence of states from the initial state to n.State
// by following Parent links. n should be a goal node returned by a successful
// search; a nil n yields a nil path.
//
// Complexity: O(L) time and memory, where L is the length of the chain.
func Path[S comparable](n *Node[S]) []S {
	if n == nil {
		return nil
	}
	path := make([]S, 0, n.Depth()+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
	}
	// collected goal → root; flip to root → goal
	slices.Reverse(path)

	return path
}

// PathCost returns the accumulated cost stored on n, or ErrNilNode.
func PathCost[S comparable](n *Node[S]) (float64, error) {
	if n == nil {
		return 0, ErrNilNode
	}

	return n.Cost, nil
}
