package search

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/frontier"
)

// runner encapsulates the mutable state of a single run.
type runner[S comparable] struct {
	problem  core.Problem[S]
	frontier frontier.Frontier[*core.Node[S]]
	opts     Options

	visited map[S]struct{} // TrackVisited
	costs   map[S]float64  // TrackCost
	res     *Result[S]
}

// Run searches p from p.Initial() using f to order expansions, and returns
// the first goal node popped from f. f should be empty; it is owned by the
// run until Run returns.
//
// Returns ErrNilProblem or ErrNilFrontier for invalid input,
// ErrOptionViolation for bad options, ErrBudgetExceeded when the expansion
// budget runs out, or a wrapped OnExpand error. When the frontier is
// exhausted the Result has a nil Goal and the error is nil.
func Run[S comparable](p core.Problem[S], f frontier.Frontier[*core.Node[S]], opts ...Option) (*Result[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if p == nil {
		return nil, ErrNilProblem
	}
	if f == nil {
		return nil, ErrNilFrontier
	}

	r := &runner[S]{
		problem:  p,
		frontier: f,
		opts:     o,
		res:      &Result[S]{},
	}
	switch o.Tracking {
	case TrackCost:
		r.costs = make(map[S]float64)
	default:
		r.visited = make(map[S]struct{})
	}

	o.Logger.Debug("search started",
		"strategy", o.Strategy,
		"tracking", o.Tracking.String(),
		"initial", fmt.Sprint(p.Initial()),
	)
	err := r.loop()
	r.finish(err)

	return r.res, err
}

// loop seeds the frontier with the root and expands until a goal is popped,
// the frontier is empty, the budget runs out or a hook fails.
func (r *runner[S]) loop() error {
	initial := r.problem.Initial()
	r.record(initial, 0)
	r.enqueue(core.NewRoot(initial))

	for !r.frontier.IsEmpty() {
		node, err := r.frontier.Get()
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		if r.stale(node) {
			r.res.Stats.Stale++
			continue
		}
		if r.problem.IsGoal(node.State) {
			r.res.Goal = node
			return nil
		}
		if r.opts.MaxExpansions > 0 && r.res.Stats.Expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d nodes expanded", ErrBudgetExceeded, r.res.Stats.Expanded)
		}
		if err = r.opts.OnExpand(visitOf(node)); err != nil {
			return fmt.Errorf("search: OnExpand hook at %v: %w", node.State, err)
		}
		r.expand(node)
	}

	return nil
}

// expand generates node's successors and enqueues the admissible ones.
func (r *runner[S]) expand(node *core.Node[S]) {
	r.res.Stats.Expanded++
	for _, child := range r.problem.Successors(node.State) {
		r.res.Stats.Generated++
		next, ok := r.admit(child, node)
		if !ok {
			r.res.Stats.Skipped++
			continue
		}
		r.enqueue(next)
	}
}

// admit consults the explored structure for child reached from parent and
// returns the node to enqueue, or false when child must be skipped.
func (r *runner[S]) admit(child S, parent *core.Node[S]) (*core.Node[S], bool) {
	if r.costs == nil {
		if _, seen := r.visited[child]; seen {
			return nil, false
		}
		r.record(child, 0)

		return core.NewChild(child, parent, 0, 0), true
	}

	newCost := parent.Cost + core.UnitCost
	if best, seen := r.costs[child]; seen && best <= newCost {
		return nil, false
	}
	r.record(child, newCost)

	return core.NewChild(child, parent, newCost, r.problem.Heuristic(child)), true
}

// record marks s as explored with the given cost. Discovered only grows the
// first time a state is recorded.
func (r *runner[S]) record(s S, cost float64) {
	if r.costs == nil {
		r.visited[s] = struct{}{}
		r.res.Discovered = append(r.res.Discovered, s)
		return
	}
	if _, seen := r.costs[s]; !seen {
		r.res.Discovered = append(r.res.Discovered, s)
	}
	r.costs[s] = cost
}

// stale reports whether node was superseded by a cheaper path to its state.
func (r *runner[S]) stale(node *core.Node[S]) bool {
	if r.costs == nil {
		return false
	}
	best, seen := r.costs[node.State]

	return seen && node.Cost > best
}

// enqueue puts n on the frontier and updates the frontier high-water mark.
func (r *runner[S]) enqueue(n *core.Node[S]) {
	r.frontier.Put(n)
	r.opts.OnEnqueue(visitOf(n))
	if l := r.frontier.Len(); l > r.res.Stats.MaxFrontier {
		r.res.Stats.MaxFrontier = l
	}
}

// finish logs the outcome and hands a Report to the Recorder.
func (r *runner[S]) finish(err error) {
	rep := Report{
		Strategy: r.opts.Strategy,
		Found:    r.res.Found(),
		Explored: len(r.res.Discovered),
		Stats:    r.res.Stats,
		Err:      err,
	}
	if rep.Found {
		rep.PathLength = r.res.Goal.Depth() + 1
		rep.PathCost = r.res.Goal.Cost
	}

	log := r.opts.Logger.With(
		"strategy", rep.Strategy,
		"found", rep.Found,
		"path_length", rep.PathLength,
		"expanded", rep.Stats.Expanded,
		"explored", rep.Explored,
	)
	if err != nil {
		log.Debug("search aborted", "err", err)
	} else {
		log.Debug("search finished")
	}

	if r.opts.Recorder != nil {
		r.opts.Recorder.RecordRun(rep)
	}
}

// visitOf projects a node onto the hook-facing Visit.
func visitOf[S comparable](n *core.Node[S]) Visit {
	return Visit{
		State:     n.State,
		Depth:     n.Depth(),
		Cost:      n.Cost,
		Heuristic: n.Heuristic,
	}
}
