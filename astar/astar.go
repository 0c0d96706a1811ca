package astar

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/search"
)

// Name labels A* runs in logs and metrics.
const Name = "astar"

// Kind is the frontier that orders A* expansions.
const Kind = frontier.KindPriority

// Search runs A* on p. The frontier is a min-heap keyed on Node.Priority
// (cost plus heuristic) and explored states map to their best known cost.
//
// Returns the same errors as search.Run. A Result with a nil Goal means no
// goal is reachable from p.Initial().
func Search[S comparable](p core.Problem[S], opts ...search.Option) (*search.Result[S], error) {
	all := make([]search.Option, 0, len(opts)+2)
	all = append(all, search.WithStrategy(Name))
	all = append(all, opts...)
	all = append(all, search.WithTracking(search.TrackCost))

	f, err := frontier.New[*core.Node[S]](Kind, (*core.Node[S]).Priority)
	if err != nil {
		return nil, err
	}

	return search.Run[S](p, f, all...)
}
