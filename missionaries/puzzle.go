package missionaries

import (
	"fmt"
	"io"
	"strings"
)

// Puzzle is an instance with a fixed population of each kind. It implements
// core.Problem[State] and is safe for concurrent use.
type Puzzle struct {
	total int
}

// New returns a puzzle with total missionaries and total cannibals.
func New(total int) (*Puzzle, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePopulation, total)
	}

	return &Puzzle{total: total}, nil
}

// Population returns the number of missionaries (equally, cannibals).
func (p *Puzzle) Population() int { return p.total }

// Initial returns everyone on the west bank with the boat.
func (p *Puzzle) Initial() State {
	return State{West: Bank{Missionaries: p.total, Cannibals: p.total}, BoatWest: true}
}

// IsLegal reports whether s is reachable in principle: counts lie within
// [0, total], each kind sums to total across the banks, and no bank has its
// missionaries outnumbered.
func (p *Puzzle) IsLegal(s State) bool {
	for _, n := range []int{s.West.Missionaries, s.West.Cannibals, s.East.Missionaries, s.East.Cannibals} {
		if n < 0 || n > p.total {
			return false
		}
	}
	if s.West.Missionaries+s.East.Missionaries != p.total || s.West.Cannibals+s.East.Cannibals != p.total {
		return false
	}

	return s.West.safe() && s.East.safe()
}

// IsGoal reports whether everyone is on the east bank of a legal state.
func (p *Puzzle) IsGoal(s State) bool {
	return p.IsLegal(s) && s.East.Missionaries == p.total && s.East.Cannibals == p.total
}

// Successors returns the legal states one crossing away from s.
func (p *Puzzle) Successors(s State) []State {
	out := make([]State, 0, len(boatLoads))
	for _, load := range boatLoads {
		next := s
		next.BoatWest = !s.BoatWest
		if s.BoatWest {
			next.West, next.East = move(s.West, s.East, load)
		} else {
			next.East, next.West = move(s.East, s.West, load)
		}
		if p.IsLegal(next) {
			out = append(out, next)
		}
	}

	return out
}

// move carries load from one bank to the other. Loads larger than the
// source bank produce negative counts, which IsLegal rejects.
func move(from, to, load Bank) (Bank, Bank) {
	from.Missionaries -= load.Missionaries
	from.Cannibals -= load.Cannibals
	to.Missionaries += load.Missionaries
	to.Cannibals += load.Cannibals

	return from, to
}

// Heuristic returns half the people still on the west bank. Each crossing
// lands at most BoatCapacity people on the east bank, so the estimate never
// exceeds the remaining crossings and changes by at most one per crossing.
func (p *Puzzle) Heuristic(s State) float64 {
	return float64(s.West.Missionaries+s.West.Cannibals) / BoatCapacity
}

// Crossings describes each boat trip along path.
func Crossings(path []State) ([]Crossing, error) {
	if len(path) < 2 {
		return nil, nil
	}
	out := make([]Crossing, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if prev.BoatWest == cur.BoatWest {
			return nil, fmt.Errorf("%w: boat did not move at step %d", ErrNotAdjacent, i)
		}
		c := Crossing{Direction: WestToEast}
		if prev.BoatWest {
			c.Missionaries = prev.West.Missionaries - cur.West.Missionaries
			c.Cannibals = prev.West.Cannibals - cur.West.Cannibals
		} else {
			c.Direction = EastToWest
			c.Missionaries = prev.East.Missionaries - cur.East.Missionaries
			c.Cannibals = prev.East.Cannibals - cur.East.Cannibals
		}
		n := c.Missionaries + c.Cannibals
		if c.Missionaries < 0 || c.Cannibals < 0 || n == 0 || n > BoatCapacity {
			return nil, fmt.Errorf("%w: step %d carries %d missionaries and %d cannibals",
				ErrNotAdjacent, i, c.Missionaries, c.Cannibals)
		}
		out = append(out, c)
	}

	return out, nil
}

// separator divides narrated steps.
var separator = strings.Repeat("-", 50)

// Narrate writes the initial state followed by every crossing and the state
// it leads to, each block closed by a separator line.
func Narrate(w io.Writer, path []State) error {
	if len(path) == 0 {
		return nil
	}
	crossings, err := Crossings(path)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", path[0], separator)
	for i, c := range crossings {
		fmt.Fprintf(&b, "%s\n%s\n%s\n", c, path[i+1], separator)
	}
	_, err = io.WriteString(w, b.String())

	return err
}
