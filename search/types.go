package search

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/internal/logging"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when Run receives a nil core.Problem.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilFrontier is returned when Run receives a nil frontier.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded is returned when MaxExpansions nodes were expanded
	// without reaching a goal.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")
)

// Tracking selects the explored-state structure used by Run.
type Tracking int

const (
	// TrackVisited records every discovered state in a set; a state is
	// enqueued at most once. Nodes carry zero cost and heuristic.
	TrackVisited Tracking = iota

	// TrackCost records the best known path cost per state; a state is
	// re-enqueued whenever a strictly cheaper path to it is found.
	TrackCost
)

// String returns "visited" or "cost".
func (t Tracking) String() string {
	switch t {
	case TrackVisited:
		return "visited"
	case TrackCost:
		return "cost"
	}

	return fmt.Sprintf("tracking(%d)", int(t))
}

// Visit describes a node to the hooks without exposing the state type.
type Visit struct {
	State     any
	Depth     int
	Cost      float64
	Heuristic float64
}

// Stats are the counters collected during one run.
type Stats struct {
	// Expanded counts nodes whose successors were generated.
	Expanded int
	// Generated counts successor states produced by the problem.
	Generated int
	// Skipped counts successors rejected by the explored structure.
	Skipped int
	// Stale counts popped nodes dropped because a cheaper path was known.
	Stale int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// Report summarises a finished run for a Recorder.
type Report struct {
	Strategy   string
	Found      bool
	PathLength int // states on the path; 0 when not found
	PathCost   float64
	Explored   int // distinct states recorded
	Stats      Stats
	Err        error
}

// Recorder receives one Report per run, including failed runs.
type Recorder interface {
	RecordRun(r Report)
}

// Option configures Run via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds the parameters of a run.
type Options struct {
	Tracking      Tracking
	Strategy      string
	Logger        *slog.Logger
	MaxExpansions int
	OnEnqueue     func(v Visit)
	OnExpand      func(v Visit) error
	Recorder      Recorder

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - TrackVisited
//   - Strategy "custom"
//   - a logger that discards everything
//   - no expansion budget
//   - no-op hooks and no Recorder
func DefaultOptions() Options {
	return Options{
		Tracking:  TrackVisited,
		Strategy:  "custom",
		Logger:    logging.NewNop(),
		OnEnqueue: func(Visit) {},
		OnExpand:  func(Visit) error { return nil },
	}
}

// WithTracking selects the explored-state structure.
func WithTracking(t Tracking) Option {
	return func(o *Options) {
		switch t {
		case TrackVisited, TrackCost:
			o.Tracking = t
		default:
			o.err = fmt.Errorf("%w: unknown tracking %v", ErrOptionViolation, t)
		}
	}
}

// WithStrategy sets the label used in logs and reports. Empty names are ignored.
func WithStrategy(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Strategy = name
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0:  stop with ErrBudgetExceeded after n expansions
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEnqueue registers a callback run for every node put on the frontier,
// the root included.
func WithOnEnqueue(fn func(v Visit)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run before a popped, non-goal node is
// expanded. Returning an error aborts the run.
func WithOnExpand(fn func(v Visit) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithRecorder registers r to receive the run's Report.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// Result is the outcome of a run.
//   - Goal: terminal node, nil when no goal was reachable.
//   - Discovered: states in the order they were first recorded as explored,
//     starting with the initial state. No state appears twice.
//   - Stats: run counters.
type Result[S comparable] struct {
	Goal       *core.Node[S]
	Discovered []S
	Stats      Stats
}

// Found reports whether the run reached a goal.
func (r *Result[S]) Found() bool {
	return r != nil && r.Goal != nil
}

// Path returns the states from the initial state to the goal, or nil when
// no goal was found.
func (r *Result[S]) Path() []S {
	if !r.Found() {
		return nil
	}

	return core.Path(r.Goal)
}
