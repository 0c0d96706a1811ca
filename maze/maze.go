package maze

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Maze is an immutable grid with a start and a goal. It implements
// core.Problem[Location].
type Maze struct {
	rows, columns int
	grid          [][]Cell
	start, goal   Location
}

// New generates a random maze. Every cell is blocked with probability
// Sparseness, then the start and goal cells are written over whatever was
// drawn there.
//
// Returns ErrEmptyGrid, ErrBadSparseness or ErrOutOfBounds for invalid options.
// Complexity: O(Rows×Columns).
func New(opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.goalSet {
		o.Goal = Location{Row: o.Rows - 1, Column: o.Columns - 1}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Maze{
		rows:    o.Rows,
		columns: o.Columns,
		grid:    make([][]Cell, o.Rows),
		start:   o.Start,
		goal:    o.Goal,
	}
	for _, l := range []Location{o.Start, o.Goal} {
		if !m.InBounds(l) {
			return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, l, o.Rows, o.Columns)
		}
	}
	for r := range m.grid {
		m.grid[r] = make([]Cell, o.Columns)
		for c := range m.grid[r] {
			if o.Rand.Float64() < o.Sparseness {
				m.grid[r][c] = Blocked
			} else {
				m.grid[r][c] = Empty
			}
		}
	}
	m.grid[o.Start.Row][o.Start.Column] = Start
	m.grid[o.Goal.Row][o.Goal.Column] = Goal

	return m, nil
}

// Parse builds a maze from text, one line per row and one rune per cell.
// A single trailing newline is allowed; "\r\n" line endings are accepted.
// Path runes are read as empty cells.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell or
// ErrMissingEndpoint.
func Parse(text string) (*Maze, error) {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")

	m := &Maze{rows: len(lines), grid: make([][]Cell, len(lines))}
	starts, goals := 0, 0
	for r, line := range lines {
		row := []rune(line)
		if r == 0 {
			m.columns = len(row)
			if m.columns == 0 {
				return nil, ErrEmptyGrid
			}
		}
		if len(row) != m.columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), m.columns)
		}
		m.grid[r] = make([]Cell, m.columns)
		for c, ch := range row {
			cell := Cell(ch)
			switch cell {
			case Empty, Blocked:
			case Path:
				cell = Empty
			case Start:
				starts++
				m.start = Location{Row: r, Column: c}
			case Goal:
				goals++
				m.goal = Location{Row: r, Column: c}
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownCell, ch, Location{Row: r, Column: c})
			}
			m.grid[r][c] = cell
		}
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: found %d start and %d goal cells", ErrMissingEndpoint, starts, goals)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *Maze) Columns() int { return m.columns }

// Start returns the start location.
func (m *Maze) Start() Location { return m.start }

// Goal returns the goal location.
func (m *Maze) Goal() Location { return m.goal }

// InBounds reports whether l lies within the grid.
func (m *Maze) InBounds(l Location) bool {
	return l.Row >= 0 && l.Row < m.rows && l.Column >= 0 && l.Column < m.columns
}

// At returns the cell at l, or ErrOutOfBounds.
func (m *Maze) At(l Location) (Cell, error) {
	if !m.InBounds(l) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, l)
	}

	return m.grid[l.Row][l.Column], nil
}

// passable reports whether l is inside the grid and not blocked.
func (m *Maze) passable(l Location) bool {
	return m.InBounds(l) && m.grid[l.Row][l.Column] != Blocked
}

// Initial returns the start location.
func (m *Maze) Initial() Location { return m.start }

// IsGoal reports whether l is the goal location.
func (m *Maze) IsGoal(l Location) bool { return l == m.goal }

// Successors returns the passable neighbours of l, ordered right, down,
// left, up.
func (m *Maze) Successors(l Location) []Location {
	out := make([]Location, 0, len(moves))
	for _, d := range moves {
		if next := l.Add(d[0], d[1]); m.passable(next) {
			out = append(out, next)
		}
	}

	return out
}

// Heuristic returns the Manhattan distance from l to the goal.
func (m *Maze) Heuristic(l Location) float64 { return Manhattan(l, m.goal) }

// Manhattan returns |Δrow| + |Δcolumn| between a and b.
func Manhattan(a, b Location) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Column-b.Column))
}

// Euclidean returns the straight-line distance between a and b. It never
// exceeds Manhattan and is therefore also admissible for orthogonal moves,
// but less informed.
func Euclidean(a, b Location) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Column-b.Column))
}
