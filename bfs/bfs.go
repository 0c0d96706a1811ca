package bfs

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/search"
)

// Name labels BFS runs in logs and metrics.
const Name = "bfs"

// Kind is the frontier that orders BFS expansions.
const Kind = frontier.KindQueue

// Search runs breadth-first search on p with a FIFO frontier and visited-set
// tracking. Caller options may override the label and add hooks, a logger, a
// budget or a recorder; the tracking mode is always TrackVisited.
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
