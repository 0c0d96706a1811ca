package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for maze construction and lookup.
var (
	// ErrEmptyGrid indicates a maze with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths in Parse input.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrOutOfBounds indicates a location outside the grid.
	ErrOutOfBounds = errors.New("maze: location out of bounds")
	// ErrBadSparseness indicates a sparseness outside [0, 1].
	ErrBadSparseness = errors.New("maze: sparseness must be within [0, 1]")
	// ErrUnknownCell indicates an unrecognised rune in Parse input.
	ErrUnknownCell = errors.New("maze: unknown cell rune")
	// ErrMissingEndpoint indicates Parse input without exactly one start and one goal.
	ErrMissingEndpoint = errors.New("maze: exactly one start and one goal required")
)

// Defaults used by New.
const (
	DefaultRows       = 10
	DefaultColumns    = 10
	DefaultSparseness = 0.2
)

// Cell is the content of one grid square, stored as its display rune.
type Cell rune

const (
	Empty   Cell = ' '
	Blocked Cell = 'X'
	Start   Cell = 'S'
	Goal    Cell = 'G'
	Path    Cell = '*'
)

// String returns the display rune of c.
func (c Cell) String() string { return string(rune(c)) }

// Location is a (row, column) position; rows grow downwards.
type Location struct {
	Row, Column int
}

// Add returns l shifted by dr rows and dc columns.
func (l Location) Add(dr, dc int) Location {
	return Location{Row: l.Row + dr, Column: l.Column + dc}
}

// String formats l as "(row,column)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Column)
}

// moves lists the neighbour offsets in successor order: right, down, left, up.
var moves = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Option configures New. Invalid values are recorded and reported by New.
type Option func(*Options)

// Options holds the parameters of a randomly generated maze.
type Options struct {
	Rows, Columns int
	Sparseness    float64
	Start         Location
	// Goal defaults to the bottom-right corner unless set with WithGoal.
	Goal    Location
	goalSet bool
	Rand    *rand.Rand

	err error
}

// DefaultOptions returns a 10×10 maze with sparseness 0.2, start (0,0) and
// goal (9,9), drawing from a time-seeded source.
func DefaultOptions() Options {
	return Options{
		Rows:       DefaultRows,
		Columns:    DefaultColumns,
		Sparseness: DefaultSparseness,
		Start:      Location{0, 0},
	}
}

// WithSize sets the grid dimensions. Non-positive values make New fail with ErrEmptyGrid.
func WithSize(rows, columns int) Option {
	return func(o *Options) {
		if rows <= 0 || columns <= 0 {
			o.err = fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, columns)
			return
		}
		o.Rows, o.Columns = rows, columns
	}
}

// WithSparseness sets the probability that a cell is blocked.
func WithSparseness(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: got %v", ErrBadSparseness, p)
			return
		}
		o.Sparseness = p
	}
}

// WithStart sets the start location.
func WithStart(l Location) Option {
	return func(o *Options) { o.Start = l }
}

// WithGoal sets the goal location.
func WithGoal(l Location) Option {
	return func(o *Options) {
		o.Goal = l
		o.goalSet = true
	}
}

// WithSeed draws blocked cells from a source seeded with seed, making New
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand draws blocked cells from r. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
