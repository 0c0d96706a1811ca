package dfs

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/search"
)

// Name labels DFS runs in logs and metrics.
const Name = "dfs"

// Kind is the frontier that orders DFS expansions.
const Kind = frontier.KindStack

// Search runs depth-first search on p. The frontier is a stack and explored
// states are tracked in a set; opts cannot change the tracking mode.
func Search[S comparable](p core.Problem[S], opts ...search.Option) (*search.Result[S], error) {
	all := make([]search.Option, 0, len(opts)+2)
	all = append(all, search.WithStrategy(Name))
	all = append(all, opts...)
	all = append(all, search.WithTracking(search.TrackVisited))

	f, err := frontier.New[*core.Node[S]](Kind, nil)
	if err != nil {
		return nil, err
	}

	return search.Run[S](p, f, all...)
}
