package missionaries

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativePopulation is returned by New for a negative population.
	ErrNegativePopulation = errors.New("missionaries: population must not be negative")
	// ErrNotAdjacent is returned by Crossings when two consecutive states are
	// not one boat trip apart.
	ErrNotAdjacent = errors.New("missionaries: states are not one crossing apart")
)

// DefaultPopulation is the classic three missionaries and three cannibals.
const DefaultPopulation = 3

// BoatCapacity is the most people a single crossing may carry.
const BoatCapacity = 2

// Bank holds the people on one side of the river.
type Bank struct {
	Missionaries, Cannibals int
}

// safe reports whether missionaries on b are not outnumbered.
func (b Bank) safe() bool {
	return b.Missionaries == 0 || b.Missionaries >= b.Cannibals
}

// State is one arrangement of people and boat. States are comparable and
// used directly as explored-set keys.
type State struct {
	West, East Bank
	BoatWest   bool
}

// String describes both banks and the boat.
func (s State) String() string {
	side := "east"
	if s.BoatWest {
		side = "west"
	}

	return fmt.Sprintf("On the west bank there are %d missionaries and %d cannibals.\n"+
		"On the east bank there are %d missionaries and %d cannibals.\n"+
		"The boat is on the %s bank.",
		s.West.Missionaries, s.West.Cannibals, s.East.Missionaries, s.East.Cannibals, side)
}

// Direction is the way a crossing goes.
type Direction int

const (
	WestToEast Direction = iota
	EastToWest
)

// String returns "from the west bank to the east bank" or its reverse.
func (d Direction) String() string {
	if d == EastToWest {
		return "from the east bank to the west bank"
	}

	return "from the west bank to the east bank"
}

// Crossing is one boat trip between consecutive states of a solution.
type Crossing struct {
	Missionaries, Cannibals int
	Direction               Direction
}

// String narrates c, for example
// "2 missionaries and 0 cannibals moved from the west bank to the east bank."
func (c Crossing) String() string {
	return fmt.Sprintf("%d missionaries and %d cannibals moved %s.", c.Missionaries, c.Cannibals, c.Direction)
}

// boatLoads are the candidate loads in successor order.
var boatLoads = []Bank{
	{Missionaries: 2},
	{Missionaries: 1},
	{Cannibals: 2},
	{Cannibals: 1},
	{Missionaries: 1, Cannibals: 1},
}
